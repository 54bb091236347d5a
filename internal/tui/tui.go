// Package tui is the interactive two-screen terminal UI: all lists, and the
// tasks of one list. Screen state lives in the views package; this package
// only maps keys to view operations and renders rows.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"todoctl/internal/output"
	"todoctl/internal/service"
	"todoctl/internal/views"
)

// ErrNotTTY is returned by Run when output is not a terminal.
var ErrNotTTY = errors.New("ui requires a TTY")

// Run starts the UI and blocks until the user quits.
func Run(ctx context.Context, svc service.Service, log logrus.FieldLogger, in io.Reader, out io.Writer) error {
	if !IsTTY(out) {
		return ErrNotTTY
	}
	program := tea.NewProgram(New(ctx, svc, log),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

type screen int

const (
	screenLists screen = iota
	screenTasks
)

// Messages returned by background commands. The views already hold the
// results; the messages only carry the outcome.
type (
	loadedMsg  struct{ err error }
	mutatedMsg struct{ err error }
	// submittedMsg reports a form submission; a failed one keeps the form open.
	submittedMsg struct{ err error }
)

// Model is the bubbletea model of the UI.
type Model struct {
	ctx context.Context
	svc service.Service
	log logrus.FieldLogger

	lists *views.ListCollection
	tasks *views.TaskCollection

	screen screen
	cursor int
	busy   bool
	// formErr is a rejection from the open form, shown until the next edit.
	formErr error

	listForm   *views.ListForm
	listEditor *listEditor
	taskForm   *views.TaskForm
	taskEditor *taskEditor
}

// New creates the model on the lists screen.
func New(ctx context.Context, svc service.Service, log logrus.FieldLogger) *Model {
	return &Model{
		ctx:   ctx,
		svc:   svc,
		log:   log,
		lists: views.NewListCollection(svc, log),
	}
}

// Init loads the lists.
func (m *Model) Init() tea.Cmd {
	return m.loadLists()
}

func (m *Model) loadLists() tea.Cmd {
	m.busy = true
	lists := m.lists
	return func() tea.Msg {
		return loadedMsg{err: lists.Load(m.ctx)}
	}
}

func (m *Model) loadTasks() tea.Cmd {
	m.busy = true
	tasks := m.tasks
	return func() tea.Msg {
		return loadedMsg{err: tasks.Load(m.ctx)}
	}
}

func (m *Model) mutate(fn func(context.Context) error) tea.Cmd {
	m.busy = true
	return func() tea.Msg {
		return mutatedMsg{err: fn(m.ctx)}
	}
}

func (m *Model) formOpen() bool {
	return m.listForm != nil || m.taskForm != nil
}

// Update handles a message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg, mutatedMsg:
		// Failures are already recorded on the view and rendered from there.
		m.busy = false
		m.clampCursor()
		return m, nil
	case submittedMsg:
		m.busy = false
		if msg.err != nil {
			m.formErr = msg.err
			return m, nil
		}
		m.closeForm()
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		if m.formOpen() {
			return m, m.updateForm(msg)
		}
		if m.screen == screenTasks {
			return m, m.updateTasks(msg)
		}
		return m, m.updateLists(msg)
	}
	return m, nil
}

func (m *Model) updateLists(key tea.KeyMsg) tea.Cmd {
	rows := m.lists.Rows()
	switch key.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		m.moveCursor(-1, len(rows))
	case "down", "j":
		m.moveCursor(1, len(rows))
	case "r":
		return m.loadLists()
	case "a":
		m.formErr = nil
		m.listForm = m.lists.OpenAddForm()
		m.listEditor = newListEditor()
	case "d":
		if len(rows) == 0 {
			return nil
		}
		id := rows[m.cursor].ID
		return m.mutate(func(ctx context.Context) error {
			return m.lists.DeleteList(ctx, id)
		})
	case "enter":
		if len(rows) == 0 {
			return nil
		}
		return m.openList(rows[m.cursor].ID)
	}
	return nil
}

func (m *Model) openList(id service.ID) tea.Cmd {
	m.screen = screenTasks
	m.cursor = 0
	if m.tasks == nil {
		m.tasks = views.NewTaskCollection(m.svc, id, m.log)
		return m.loadTasks()
	}
	tasks := m.tasks
	m.busy = true
	return func() tea.Msg {
		if tasks.ListID() == id {
			return loadedMsg{err: tasks.Load(m.ctx)}
		}
		return loadedMsg{err: tasks.SetList(m.ctx, id)}
	}
}

func (m *Model) updateTasks(key tea.KeyMsg) tea.Cmd {
	rows := m.tasks.Rows()
	switch key.String() {
	case "q":
		return tea.Quit
	case "esc", "backspace":
		m.screen = screenLists
		m.cursor = 0
		return m.loadLists()
	case "up", "k":
		m.moveCursor(-1, len(rows))
	case "down", "j":
		m.moveCursor(1, len(rows))
	case "r":
		return m.loadTasks()
	case "a":
		m.formErr = nil
		m.taskForm = m.tasks.OpenAddForm()
		m.taskEditor = newTaskEditor(m.taskForm.Entity())
	case "e":
		if len(rows) == 0 || !rows[m.cursor].CanEdit {
			return nil
		}
		f, err := m.tasks.OpenEditForm(rows[m.cursor].Task.TaskID)
		if err != nil {
			m.formErr = err
			return nil
		}
		m.formErr = nil
		m.taskForm = f
		m.taskEditor = newTaskEditor(f.Entity())
	case "d":
		if len(rows) == 0 {
			return nil
		}
		id := rows[m.cursor].Task.TaskID
		return m.mutate(func(ctx context.Context) error {
			return m.tasks.DeleteTask(ctx, id)
		})
	}
	return nil
}

func (m *Model) updateForm(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.cancelForm()
		return nil
	case "enter":
		return m.submitForm()
	}

	m.formErr = nil
	if m.listEditor != nil {
		return m.listEditor.update(key)
	}
	switch key.String() {
	case "tab", "down":
		m.taskEditor.next()
		return nil
	case "shift+tab", "up":
		m.taskEditor.prev()
		return nil
	}
	return m.taskEditor.update(key)
}

func (m *Model) submitForm() tea.Cmd {
	m.busy = true
	if m.listForm != nil {
		f := m.listForm
		f.Edit(m.listEditor.apply)
		return func() tea.Msg {
			return submittedMsg{err: f.Submit(m.ctx)}
		}
	}
	f := m.taskForm
	f.Edit(m.taskEditor.apply)
	return func() tea.Msg {
		return submittedMsg{err: f.Submit(m.ctx)}
	}
}

func (m *Model) cancelForm() {
	if m.listForm != nil {
		m.listForm.Cancel()
	}
	if m.taskForm != nil {
		m.taskForm.Cancel()
	}
	m.closeForm()
}

func (m *Model) closeForm() {
	m.listForm, m.listEditor = nil, nil
	m.taskForm, m.taskEditor = nil, nil
	m.formErr = nil
}

func (m *Model) moveCursor(delta, n int) {
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) clampCursor() {
	n := len(m.lists.Rows())
	if m.screen == screenTasks && m.tasks != nil {
		n = len(m.tasks.Rows())
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the current screen.
func (m *Model) View() string {
	var b strings.Builder
	if m.screen == screenTasks && m.tasks != nil {
		m.viewTasks(&b)
	} else {
		m.viewLists(&b)
	}
	return b.String()
}

func (m *Model) viewLists(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Lists") + "\n")
	rows := m.lists.Rows()
	if len(rows) == 0 && m.lists.Loaded() {
		b.WriteString("  no lists yet\n")
	}
	for i, row := range rows {
		line := fmt.Sprintf("%s  %d remaining", row.Title, row.Remaining)
		if row.Completed {
			line = doneStyle.Render(row.Title) + "  " + output.CompletedMarker
		}
		b.WriteString(m.rowPrefix(i) + m.highlight(i, line) + "\n")
	}
	if m.listEditor != nil {
		b.WriteString("\n" + m.listEditor.view() + "\n")
	}
	m.viewErrors(b, m.lists.Err())
	if m.listEditor != nil {
		b.WriteString(helpStyle.Render("enter save • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("a add • d delete • enter open • r reload • q quit"))
	}
}

func (m *Model) viewTasks(b *strings.Builder) {
	title := m.tasks.Title()
	if title == "" {
		title = "…"
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	rows := m.tasks.Rows()
	if len(rows) == 0 && m.tasks.Loaded() {
		b.WriteString("  no tasks yet\n")
	}
	canEdit := false
	for i, row := range rows {
		if row.Editing && m.taskEditor != nil {
			b.WriteString(m.rowPrefix(i) + "editing\n" + m.taskEditor.view() + "\n")
			continue
		}
		if i == m.cursor {
			canEdit = row.CanEdit
		}
		b.WriteString(m.rowPrefix(i) + m.renderTask(i, row.Task) + "\n")
	}
	if m.tasks.Mode().Kind == views.EditAdding && m.taskEditor != nil {
		b.WriteString("\n" + m.taskEditor.view() + "\n")
	}
	m.viewErrors(b, m.tasks.Err())
	switch {
	case m.taskEditor != nil:
		b.WriteString(helpStyle.Render("tab next field • space change priority • enter save • esc cancel"))
	case canEdit:
		b.WriteString(helpStyle.Render("a add • e edit • d delete • r reload • esc back"))
	default:
		b.WriteString(helpStyle.Render("a add • d delete • r reload • esc back"))
	}
}

func (m *Model) renderTask(i int, t service.Task) string {
	pri := string(t.Priority)
	if s, ok := priorityStyle[pri]; ok {
		pri = s.Render(fmt.Sprintf("%-6s", pri))
	}
	due := output.FormatDue(t.DueDate)
	if t.IsComplete {
		return doneStyle.Render(t.Description) + "  " + due + "  " + pri + "  " + output.CompletedMarker
	}
	return m.highlight(i, t.Description) + "  " + due + "  " + pri
}

func (m *Model) viewErrors(b *strings.Builder, viewErr error) {
	if m.formErr != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+m.formErr.Error()) + "\n")
	}
	if viewErr != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+viewErr.Error()) + "\n")
	}
}

func (m *Model) rowPrefix(i int) string {
	if i == m.cursor && !m.formOpen() {
		return selectedStyle.Render("> ")
	}
	return "  "
}

func (m *Model) highlight(i int, s string) string {
	if i == m.cursor && !m.formOpen() {
		return selectedStyle.Render(s)
	}
	return s
}
