// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strconv"
	"sync"

	"todoctl/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
// Tasks are kept in insertion order, not priority order, so callers that
// display them must sort.
type FakeService struct {
	mu     sync.RWMutex
	lists  []service.TodoList
	nextID int

	// Error injection for testing
	ListListsErr  error
	GetListErr    error
	CreateListErr error
	DeleteListErr error
	CreateTaskErr error
	EditTaskErr   error
	DeleteTaskErr error

	// Calls counts invocations per method name.
	Calls map[string]int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1, Calls: make(map[string]int)}
}

func (f *FakeService) record(name string) {
	f.mu.Lock()
	f.Calls[name]++
	f.mu.Unlock()
}

// CallCount returns how often method was called.
func (f *FakeService) CallCount(method string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.Calls[method]
}

func (f *FakeService) newIDLocked() service.ID {
	id := service.ID(strconv.Itoa(f.nextID))
	f.nextID++
	return id
}

// AddList adds a list and returns its id.
func (f *FakeService) AddList(title string) service.ID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.newIDLocked()
	f.lists = append(f.lists, service.TodoList{ID: id, Title: title})
	return id
}

// AddTask adds a task to a list and returns its id. The task's ListID is set.
// Completed tasks bump the list's completion counter.
func (f *FakeService) AddTask(listID service.ID, task service.Task) service.ID {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.indexLocked(listID)
	if i < 0 {
		return ""
	}
	if task.TaskID.IsZero() {
		task.TaskID = f.newIDLocked()
	}
	task.ListID = listID
	f.lists[i].Tasks = append(f.lists[i].Tasks, task)
	if task.IsComplete {
		f.lists[i].NumCompleted++
	}
	return task.TaskID
}

// SetNumCompleted overrides the completion counter the backend reports.
func (f *FakeService) SetNumCompleted(listID service.ID, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.indexLocked(listID); i >= 0 {
		f.lists[i].NumCompleted = n
	}
}

func (f *FakeService) indexLocked(listID service.ID) int {
	for i, l := range f.lists {
		if l.ID == listID {
			return i
		}
	}
	return -1
}

func cloneList(l service.TodoList) service.TodoList {
	tasks := make([]service.Task, len(l.Tasks))
	copy(tasks, l.Tasks)
	l.Tasks = tasks
	return l
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context) ([]service.TodoList, error) {
	f.record("ListLists")
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.TodoList, len(f.lists))
	for i, l := range f.lists {
		result[i] = cloneList(l)
	}
	return result, nil
}

// GetList implements service.Service.
func (f *FakeService) GetList(ctx context.Context, listID service.ID) (service.TodoList, error) {
	f.record("GetList")
	if f.GetListErr != nil {
		return service.TodoList{}, f.GetListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	i := f.indexLocked(listID)
	if i < 0 {
		return service.TodoList{}, service.ErrNotFound
	}
	return cloneList(f.lists[i]), nil
}

// CreateList implements service.Service.
func (f *FakeService) CreateList(ctx context.Context, title string) error {
	f.record("CreateList")
	if f.CreateListErr != nil {
		return f.CreateListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TodoList{ID: f.newIDLocked(), Title: title})
	return nil
}

// DeleteList implements service.Service.
func (f *FakeService) DeleteList(ctx context.Context, listID service.ID) error {
	f.record("DeleteList")
	if f.DeleteListErr != nil {
		return f.DeleteListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.indexLocked(listID)
	if i < 0 {
		return service.ErrNotFound
	}
	f.lists = append(f.lists[:i], f.lists[i+1:]...)
	return nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID service.ID, task service.Task) error {
	f.record("CreateTask")
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.indexLocked(listID)
	if i < 0 {
		return service.ErrNotFound
	}
	task.TaskID = f.newIDLocked()
	task.ListID = listID
	f.lists[i].Tasks = append(f.lists[i].Tasks, task)
	return nil
}

// EditTask implements service.Service.
func (f *FakeService) EditTask(ctx context.Context, task service.Task) error {
	f.record("EditTask")
	if f.EditTaskErr != nil {
		return f.EditTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for li := range f.lists {
		for ti, t := range f.lists[li].Tasks {
			if t.TaskID == task.TaskID {
				task.ListID = t.ListID
				if task.IsComplete != t.IsComplete {
					if task.IsComplete {
						f.lists[li].NumCompleted++
					} else {
						f.lists[li].NumCompleted--
					}
				}
				f.lists[li].Tasks[ti] = task
				return nil
			}
		}
	}
	return service.ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, taskID service.ID) error {
	f.record("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for li := range f.lists {
		tasks := f.lists[li].Tasks
		for ti, t := range tasks {
			if t.TaskID == taskID {
				if t.IsComplete {
					f.lists[li].NumCompleted--
				}
				f.lists[li].Tasks = append(tasks[:ti], tasks[ti+1:]...)
				return nil
			}
		}
	}
	return service.ErrNotFound
}
