package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todoctl/internal/logging"
	"todoctl/internal/service"
	"todoctl/internal/views"
)

var (
	// ErrListNotFound is returned when no list matches a reference.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList is returned when a title matches more than one list.
	ErrAmbiguousList = errors.New("ambiguous list name")

	// ErrTaskOutOfRange is returned for a task number past the end of the list.
	ErrTaskOutOfRange = errors.New("task number out of range")
)

// resolveList finds a list by exact id, then by title (case-insensitive,
// trimmed). The lists view is loaded if it has not been yet.
func resolveList(ctx context.Context, lists *views.ListCollection, ref string) (service.TodoList, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return service.TodoList{}, usageErrorf("list required (use --list)")
	}
	if !lists.Loaded() {
		if err := lists.Load(ctx); err != nil {
			return service.TodoList{}, err
		}
	}

	all := lists.Lists()
	for _, l := range all {
		if l.ID.String() == ref {
			return l, nil
		}
	}

	want := strings.ToLower(ref)
	var matches []service.TodoList
	for _, l := range all {
		if strings.ToLower(strings.TrimSpace(l.Title)) == want {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.TodoList{}, fmt.Errorf("%w: %s", ErrListNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return service.TodoList{}, fmt.Errorf("%w: %s", ErrAmbiguousList, ref)
	}
}

// openTasks resolves ref and returns the loaded task view of that list.
func openTasks(ctx context.Context, svc service.Service, ref string) (*views.TaskCollection, error) {
	log := logging.FromContext(ctx)
	list, err := resolveList(ctx, views.NewListCollection(svc, log), ref)
	if err != nil {
		return nil, err
	}
	tasks := views.NewTaskCollection(svc, list.ID, log)
	if err := tasks.Load(ctx); err != nil {
		return nil, err
	}
	return tasks, nil
}

// taskByNumber returns the task shown at 1-based row num of the
// priority-sorted display.
func taskByNumber(tasks *views.TaskCollection, num int) (service.Task, error) {
	all := tasks.Tasks()
	if num < 1 || num > len(all) {
		return service.Task{}, fmt.Errorf("%w: %d", ErrTaskOutOfRange, num)
	}
	return all[num-1], nil
}
