package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todoctl/internal/backend/rest"
	"todoctl/internal/commands"
	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/logging"
	"todoctl/internal/service"
	"todoctl/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc service.Service, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	cfg.Quiet = quiet

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// groceries returns a store with two lists. Groceries holds three tasks,
// one of them completed; Chores is empty.
func groceries() *testutil.FakeService {
	svc := testutil.NewFakeService()
	list := svc.AddList("Groceries")
	svc.AddTask(list, service.Task{Description: "Buy bread", DueDate: "2024-01-05", Priority: service.PriorityLow})
	svc.AddTask(list, service.Task{Description: "Buy milk", DueDate: "2024-01-06", Priority: service.PriorityHigh})
	svc.AddTask(list, service.Task{Description: "Buy jam", DueDate: "2024-01-07", Priority: service.PriorityMedium, IsComplete: true})
	svc.AddList("Chores")
	return svc
}

func mustGetList(t *testing.T, svc *testutil.FakeService, id service.ID) service.TodoList {
	t.Helper()
	list, err := svc.GetList(context.Background(), id)
	if err != nil {
		t.Fatalf("GetList(%s): %v", id, err)
	}
	return list
}

func findTask(list service.TodoList, desc string) (service.Task, bool) {
	for _, task := range list.Tasks {
		if task.Description == desc {
			return task, true
		}
	}
	return service.Task{}, false
}

func expectCode(t *testing.T, want, got int, stderr string) {
	t.Helper()
	if got != want {
		t.Errorf("expected exit code %d, got %d (stderr %q)", want, got, stderr)
	}
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	expectCode(t, exitcode.Success, code, stderr)
	if stdout != "todoctl 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	expectCode(t, exitcode.Success, code, stderr)
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "--base-url", "todoctl ui"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

// Tests for lists command
func TestListsCommand(t *testing.T) {
	svc := groceries()

	stdout, stderr, code := runCommand(t, &commands.ListsCmd{}, svc, nil, false)

	expectCode(t, exitcode.Success, code, stderr)
	expected := "   1  Groceries  2 remaining\n   5  Chores  0 remaining\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListsCommand_CompletedList(t *testing.T) {
	svc := testutil.NewFakeService()
	list := svc.AddList("Done")
	svc.AddTask(list, service.Task{Description: "All of it", DueDate: "2024-01-05", Priority: service.PriorityLow, IsComplete: true})

	stdout, _, code := runCommand(t, &commands.ListsCmd{}, svc, nil, false)

	expectCode(t, exitcode.Success, code, "")
	expected := "   1  Done  0 remaining  [done]\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListsCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.ListsCmd{}, svc, nil, false)
	expectCode(t, exitcode.Success, code, "")
	if stdout != "no lists found\n" {
		t.Errorf("expected %q, got %q", "no lists found\n", stdout)
	}

	stdout, _, _ = runCommand(t, &commands.ListsCmd{}, svc, nil, true)
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestListsCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListListsErr = errors.New("connection refused")

	stdout, stderr, code := runCommand(t, &commands.ListsCmd{}, svc, nil, false)

	expectCode(t, exitcode.BackendError, code, stderr)
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: backend error: connection refused\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for list command
func TestListCommand_SortedByPriority(t *testing.T) {
	svc := groceries()

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, []string{"groceries"}, false)

	expectCode(t, exitcode.Success, code, stderr)
	expected := "------------\nGroceries\n------------\n" +
		"   1  [ ] high      1/6/2024  Buy milk\n" +
		"   2  [x] medium    1/7/2024  Buy jam\n" +
		"   3  [ ] low       1/5/2024  Buy bread\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_ByID(t *testing.T) {
	svc := groceries()

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, []string{"5"}, false)

	expectCode(t, exitcode.Success, code, stderr)
	expected := "------------\nChores\n------------\nno tasks found\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	svc := groceries()

	stdout, _, code := runCommand(t, &commands.ListCmd{}, svc, []string{"Chores"}, true)

	expectCode(t, exitcode.Success, code, "")
	expected := "------------\nChores\n------------\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_ListNotFound(t *testing.T) {
	svc := groceries()

	_, stderr, code := runCommand(t, &commands.ListCmd{}, svc, []string{"Nope"}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if stderr != "error: list not found: Nope\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestListCommand_AmbiguousTitle(t *testing.T) {
	svc := groceries()
	svc.AddList("groceries ")

	_, stderr, code := runCommand(t, &commands.ListCmd{}, svc, []string{"Groceries"}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if !strings.Contains(stderr, "ambiguous list name") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestListCommand_NoName(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.ListCmd{}, groceries(), nil, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if stderr != "error: list name required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	svc := groceries()
	cmd := &commands.AddCmd{}
	cmd.SetListName("Groceries")
	cmd.SetDue("2024-02-01")
	cmd.SetPriority("Medium")

	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Buy", "eggs"}, false)

	expectCode(t, exitcode.Success, code, stderr)
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}

	task, found := findTask(mustGetList(t, svc, "1"), "Buy eggs")
	if !found {
		t.Fatal("task not created")
	}
	if task.DueDate != "2024-02-01" || task.Priority != service.PriorityMedium || task.IsComplete {
		t.Errorf("unexpected task %+v", task)
	}
}

func TestAddCommand_Defaults(t *testing.T) {
	svc := groceries()
	cmd := &commands.AddCmd{}
	cmd.SetListName("Chores")

	_, stderr, code := runCommand(t, cmd, svc, []string{"Vacuum"}, true)

	expectCode(t, exitcode.Success, code, stderr)
	task, found := findTask(mustGetList(t, svc, "5"), "Vacuum")
	if !found {
		t.Fatal("task not created")
	}
	if task.Priority != service.PriorityLow {
		t.Errorf("expected low priority, got %q", task.Priority)
	}
	if _, err := service.ParseDueDate(task.DueDate); err != nil {
		t.Errorf("expected today's date, got %q", task.DueDate)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	cmd := &commands.AddCmd{}
	cmd.SetListName("Groceries")

	stdout, stderr, code := runCommand(t, cmd, groceries(), []string{"Buy eggs"}, true)

	expectCode(t, exitcode.Success, code, stderr)
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestAddCommand_NoDescription(t *testing.T) {
	svc := groceries()
	cmd := &commands.AddCmd{}
	cmd.SetListName("Groceries")

	_, stderr, code := runCommand(t, cmd, svc, []string{"  "}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if stderr != "error: description required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.CallCount("CreateTask") != 0 {
		t.Error("expected no backend call")
	}
}

func TestAddCommand_NoList(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.AddCmd{}, groceries(), []string{"Buy eggs"}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if stderr != "error: list required (use --list)\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestAddCommand_Duplicate(t *testing.T) {
	svc := groceries()
	cmd := &commands.AddCmd{}
	cmd.SetListName("Groceries")

	_, stderr, code := runCommand(t, cmd, svc, []string{"Buy milk"}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if svc.CallCount("CreateTask") != 0 {
		t.Error("duplicate description reached the backend")
	}
}

func TestAddCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		due      string
		priority string
	}{
		{"bad priority", "", "urgent"},
		{"bad due date", "tomorrow", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := groceries()
			cmd := &commands.AddCmd{}
			cmd.SetListName("Groceries")
			cmd.SetDue(tt.due)
			cmd.SetPriority(tt.priority)

			_, stderr, code := runCommand(t, cmd, svc, []string{"Buy eggs"}, false)

			expectCode(t, exitcode.UserError, code, stderr)
			if svc.CallCount("CreateTask") != 0 {
				t.Error("invalid task reached the backend")
			}
		})
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	svc := groceries()
	svc.CreateTaskErr = errors.New("status 500")
	cmd := &commands.AddCmd{}
	cmd.SetListName("Groceries")

	_, stderr, code := runCommand(t, cmd, svc, []string{"Buy eggs"}, false)

	expectCode(t, exitcode.BackendError, code, stderr)
	if !strings.HasPrefix(stderr, "error: backend error:") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for edit command
func TestEditCommand_Success(t *testing.T) {
	svc := groceries()
	cmd := &commands.EditCmd{}
	cmd.SetListName("Groceries")
	cmd.SetFields("Buy oat milk", "2024-03-01", "low")

	stdout, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)

	expectCode(t, exitcode.Success, code, stderr)
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	task, found := findTask(mustGetList(t, svc, "1"), "Buy oat milk")
	if !found {
		t.Fatal("task not renamed")
	}
	if task.DueDate != "2024-03-01" || task.Priority != service.PriorityLow {
		t.Errorf("unexpected task %+v", task)
	}
}

func TestEditCommand_KeepsUnsetFields(t *testing.T) {
	svc := groceries()
	cmd := &commands.EditCmd{}
	cmd.SetListName("Groceries")
	cmd.SetFields("", "", "medium")

	_, stderr, code := runCommand(t, cmd, svc, []string{"3"}, true)

	expectCode(t, exitcode.Success, code, stderr)
	task, _ := findTask(mustGetList(t, svc, "1"), "Buy bread")
	if task.Priority != service.PriorityMedium || task.DueDate != "2024-01-05" {
		t.Errorf("unexpected task %+v", task)
	}
}

func TestEditCommand_NothingToChange(t *testing.T) {
	cmd := &commands.EditCmd{}
	cmd.SetListName("Groceries")

	_, stderr, code := runCommand(t, cmd, groceries(), []string{"1"}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if !strings.Contains(stderr, "nothing to change") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestEditCommand_CompletedTask(t *testing.T) {
	svc := groceries()
	cmd := &commands.EditCmd{}
	cmd.SetListName("Groceries")
	cmd.SetFields("Buy marmalade", "", "")

	_, stderr, code := runCommand(t, cmd, svc, []string{"2"}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if svc.CallCount("EditTask") != 0 {
		t.Error("completed task was edited")
	}
}

func TestEditCommand_RenameToExisting(t *testing.T) {
	svc := groceries()
	cmd := &commands.EditCmd{}
	cmd.SetListName("Groceries")
	cmd.SetFields("Buy bread", "", "")

	_, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if svc.CallCount("EditTask") != 0 {
		t.Error("duplicate description reached the backend")
	}
}

// Tests for done command
func TestDoneCommand_Success(t *testing.T) {
	svc := groceries()
	cmd := &commands.DoneCmd{}
	cmd.SetListName("Groceries")

	stdout, stderr, code := runCommand(t, cmd, svc, []string{"3"}, false)

	expectCode(t, exitcode.Success, code, stderr)
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	list := mustGetList(t, svc, "1")
	task, _ := findTask(list, "Buy bread")
	if !task.IsComplete {
		t.Error("expected task to be completed")
	}
	if list.Remaining() != 1 {
		t.Errorf("expected 1 remaining, got %d", list.Remaining())
	}
}

func TestDoneCommand_AlreadyComplete(t *testing.T) {
	svc := groceries()
	cmd := &commands.DoneCmd{}
	cmd.SetListName("Groceries")

	_, stderr, code := runCommand(t, cmd, svc, []string{"2"}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if svc.CallCount("EditTask") != 0 {
		t.Error("completed task was sent again")
	}
}

func TestDoneCommand_BadRefs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"no ref", nil, "error: task number required\n"},
		{"not a number", []string{"abc"}, "error: invalid task number: abc\n"},
		{"zero", []string{"0"}, "error: task number out of range: 0\n"},
		{"past end", []string{"9"}, "error: task number out of range: 9\n"},
		{"extra argument", []string{"1", "2"}, "error: unexpected argument: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := groceries()
			cmd := &commands.DoneCmd{}
			cmd.SetListName("Groceries")

			_, stderr, code := runCommand(t, cmd, svc, tt.args, false)

			expectCode(t, exitcode.UserError, code, stderr)
			if stderr != tt.stderr {
				t.Errorf("expected stderr %q, got %q", tt.stderr, stderr)
			}
		})
	}
}

// Tests for rm command
func TestRmCommand_Success(t *testing.T) {
	svc := groceries()
	cmd := &commands.RmCmd{}
	cmd.SetListName("Groceries")

	stdout, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)

	expectCode(t, exitcode.Success, code, stderr)
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	if _, found := findTask(mustGetList(t, svc, "1"), "Buy milk"); found {
		t.Error("expected task to be deleted")
	}
}

func TestRmCommand_CompletedTask(t *testing.T) {
	svc := groceries()
	cmd := &commands.RmCmd{}
	cmd.SetListName("Groceries")

	_, stderr, code := runCommand(t, cmd, svc, []string{"2"}, true)

	expectCode(t, exitcode.Success, code, stderr)
	if _, found := findTask(mustGetList(t, svc, "1"), "Buy jam"); found {
		t.Error("expected completed task to be deleted")
	}
}

func TestRmCommand_NoRef(t *testing.T) {
	cmd := &commands.RmCmd{}
	cmd.SetListName("Groceries")

	_, stderr, code := runCommand(t, cmd, groceries(), nil, false)

	expectCode(t, exitcode.UserError, code, stderr)
}

// Tests for createlist command
func TestCreateListCommand_Success(t *testing.T) {
	svc := groceries()

	stdout, stderr, code := runCommand(t, &commands.CreateListCmd{}, svc, []string{"Work", "stuff"}, false)

	expectCode(t, exitcode.Success, code, stderr)
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	lists, _ := svc.ListLists(context.Background())
	if len(lists) != 3 || lists[2].Title != "Work stuff" {
		t.Errorf("unexpected lists %+v", lists)
	}
}

func TestCreateListCommand_Duplicate(t *testing.T) {
	svc := groceries()

	_, stderr, code := runCommand(t, &commands.CreateListCmd{}, svc, []string{"Groceries"}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if stderr != "error: list already exists: Groceries\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.CallCount("CreateList") != 0 {
		t.Error("duplicate list reached the backend")
	}
}

func TestCreateListCommand_NoName(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.CreateListCmd{}, groceries(), nil, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if stderr != "error: list name required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for rmlist command
func TestRmListCommand_NonEmptyList(t *testing.T) {
	svc := groceries()

	stdout, stderr, code := runCommand(t, &commands.RmListCmd{}, svc, []string{"Groceries"}, false)

	expectCode(t, exitcode.Success, code, stderr)
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	lists, _ := svc.ListLists(context.Background())
	if len(lists) != 1 || lists[0].Title != "Chores" {
		t.Errorf("unexpected lists %+v", lists)
	}
}

func TestRmListCommand_ByID(t *testing.T) {
	svc := groceries()

	_, stderr, code := runCommand(t, &commands.RmListCmd{}, svc, []string{"5"}, true)

	expectCode(t, exitcode.Success, code, stderr)
	if _, err := svc.GetList(context.Background(), "5"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected list to be deleted, got %v", err)
	}
}

func TestRmListCommand_ListNotFound(t *testing.T) {
	svc := groceries()

	_, stderr, code := runCommand(t, &commands.RmListCmd{}, svc, []string{"Nope"}, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if svc.CallCount("DeleteList") != 0 {
		t.Error("expected no delete")
	}
}

func TestRmListCommand_NoName(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.RmListCmd{}, groceries(), nil, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if stderr != "error: list name required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for ui command
func TestUiCommand_NotTTY(t *testing.T) {
	cmd := &commands.UiCmd{}
	cmd.SetInput(strings.NewReader(""))

	_, stderr, code := runCommand(t, cmd, groceries(), nil, false)

	expectCode(t, exitcode.UserError, code, stderr)
	if !strings.Contains(stderr, "TTY") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestUiCommand_DebugLogsToFile(t *testing.T) {
	cmd := &commands.UiCmd{}
	cmd.SetInput(strings.NewReader(""))

	var outBuf, errBuf bytes.Buffer
	cfg, err := config.New(filepath.Join(t.TempDir(), "todoctl"))
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	cfg.Debug = true
	ctx := logging.WithLogger(context.Background(), logging.New(true, &errBuf))

	code := cmd.Run(ctx, cfg, groceries(), nil, &outBuf, &errBuf)

	expectCode(t, exitcode.UserError, code, errBuf.String())
	if strings.Contains(errBuf.String(), "level=debug") {
		t.Errorf("debug log leaked to stderr: %q", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "TTY") {
		t.Errorf("expected TTY error on stderr, got %q", errBuf.String())
	}
	data, err := os.ReadFile(cfg.LogPath())
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "starting ui") {
		t.Errorf("expected log file to contain startup line, got %q", data)
	}
}

func TestUiCommand_LogsDiscardedWithoutDebug(t *testing.T) {
	cmd := &commands.UiCmd{}
	cmd.SetInput(strings.NewReader(""))

	var outBuf, errBuf bytes.Buffer
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	log := logging.New(false, &errBuf)
	ctx := logging.WithLogger(context.Background(), log)

	cmd.Run(ctx, cfg, groceries(), nil, &outBuf, &errBuf)
	log.Warn("after ui")

	if _, err := os.Stat(cfg.LogPath()); !os.IsNotExist(err) {
		t.Errorf("log file should not be created without --debug: %v", err)
	}
	if !strings.Contains(errBuf.String(), "after ui") {
		t.Errorf("logger output not restored: %q", errBuf.String())
	}
}

// Tests against the HTTP client and a fake backend
func TestCommands_OverHTTP(t *testing.T) {
	store := groceries()
	backend := testutil.NewFakeBackend(t, store)
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	cfg.BaseURL = backend.URL + "/"
	svc, err := rest.New(cfg, nil)
	if err != nil {
		t.Fatalf("rest.New: %v", err)
	}

	cmd := &commands.DoneCmd{}
	cmd.SetListName("Groceries")
	_, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)
	expectCode(t, exitcode.Success, code, stderr)

	task, _ := findTask(mustGetList(t, store, "1"), "Buy milk")
	if !task.IsComplete {
		t.Error("expected task to be completed through the backend")
	}

	backend.FailWith(503)
	_, stderr, code = runCommand(t, &commands.ListsCmd{}, svc, nil, false)
	expectCode(t, exitcode.BackendError, code, stderr)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitcode.Success},
		{"not found", commands.ErrListNotFound, exitcode.UserError},
		{"invalid", service.ErrInvalid, exitcode.UserError},
		{"config", config.ErrInvalid, exitcode.ConfigError},
		{"timeout", service.ErrTimeout, exitcode.BackendError},
		{"other", errors.New("boom"), exitcode.BackendError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commands.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
