package views

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"todoctl/internal/form"
	"todoctl/internal/logging"
	"todoctl/internal/service"
)

var (
	// ErrTaskNotFound is returned when a task id is not in the loaded list.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskComplete is returned when opening the editor on a completed task.
	ErrTaskComplete = errors.New("completed tasks cannot be edited")
)

// TaskForm is the entry form for creating or editing a task.
type TaskForm = form.Form[service.ID, service.Task]

// EditKind is the kind of form open on the task screen.
type EditKind int

const (
	// EditNone means no form is open.
	EditNone EditKind = iota
	// EditAdding means the add-task form is open.
	EditAdding
	// EditEditing means one task is being edited.
	EditEditing
)

// EditMode says which form, if any, is open. TaskID is set only for EditEditing.
type EditMode struct {
	Kind   EditKind
	TaskID service.ID
}

// Editing reports whether task id is the one being edited.
func (m EditMode) Editing(id service.ID) bool {
	return m.Kind == EditEditing && m.TaskID == id
}

// TaskRow is one rendered row of the task screen.
type TaskRow struct {
	Task service.Task
	// Editing is true when the row renders as an edit form instead of a display row.
	Editing bool
	// CanEdit is false for completed tasks; they can only be deleted.
	CanEdit bool
}

// TaskCollection is the task screen of one list.
type TaskCollection struct {
	svc service.Service
	log logrus.FieldLogger
	now func() time.Time

	mu      sync.RWMutex
	listID  service.ID
	title   string
	tasks   []service.Task
	mode    EditMode
	loaded  bool
	lastErr error
}

// NewTaskCollection creates the view for listID. Call Load to fetch data.
func NewTaskCollection(svc service.Service, listID service.ID, log logrus.FieldLogger) *TaskCollection {
	if log == nil {
		log = logging.Discard()
	}
	return &TaskCollection{
		svc:    svc,
		log:    log.WithField("view", "tasks"),
		now:    time.Now,
		listID: listID,
	}
}

// SetClock replaces the clock used for the default due date.
func (v *TaskCollection) SetClock(now func() time.Time) {
	v.now = now
}

// ListID returns the list the view is scoped to.
func (v *TaskCollection) ListID() service.ID {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.listID
}

// SetList rescopes the view to another list and reloads when the id changed.
func (v *TaskCollection) SetList(ctx context.Context, listID service.ID) error {
	v.mu.Lock()
	changed := v.listID != listID
	if changed {
		v.listID = listID
		v.title = ""
		v.tasks = nil
		v.loaded = false
		v.mode = EditMode{}
	}
	v.mu.Unlock()
	if !changed {
		return nil
	}
	return v.Load(ctx)
}

// Load fetches the list and replaces the tasks with a priority-sorted copy.
// On failure the previous tasks are kept and the error becomes visible.
func (v *TaskCollection) Load(ctx context.Context) error {
	listID := v.ListID()
	list, err := v.svc.GetList(ctx, listID)
	if err != nil {
		v.log.WithError(err).WithField("list", listID).Debug("load tasks failed")
		v.setErr(fmt.Errorf("load list %s: %w", listID, err))
		return err
	}

	sorted := service.SortByPriority(list.Tasks)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.listID != listID {
		// Rescoped while the request was in flight.
		return nil
	}
	v.title = list.Title
	v.tasks = sorted
	v.loaded = true
	v.lastErr = nil
	v.log.WithField("list", listID).WithField("count", len(sorted)).Debug("tasks loaded")
	return nil
}

// Loaded reports whether at least one fetch has succeeded.
func (v *TaskCollection) Loaded() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loaded
}

// Title returns the list title.
func (v *TaskCollection) Title() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.title
}

// Tasks returns a copy of the tasks in display order.
func (v *TaskCollection) Tasks() []service.Task {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]service.Task, len(v.tasks))
	copy(out, v.tasks)
	return out
}

// Rows returns the rendered rows in display order.
func (v *TaskCollection) Rows() []TaskRow {
	v.mu.RLock()
	defer v.mu.RUnlock()
	rows := make([]TaskRow, len(v.tasks))
	for i, t := range v.tasks {
		editing := v.mode.Editing(t.TaskID)
		rows[i] = TaskRow{
			Task:    t,
			Editing: editing,
			CanEdit: !t.IsComplete && !editing,
		}
	}
	return rows
}

// Mode returns the current edit mode.
func (v *TaskCollection) Mode() EditMode {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mode
}

// Err returns the last failure, or nil after a successful load.
func (v *TaskCollection) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lastErr
}

// Task returns the loaded task with the given id.
func (v *TaskCollection) Task(id service.ID) (service.Task, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.findLocked(id)
}

func (v *TaskCollection) findLocked(id service.ID) (service.Task, bool) {
	for _, t := range v.tasks {
		if t.TaskID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// IsUniqueDescription reports whether no loaded task other than exclude has
// exactly this description. Pass the zero id to check against every task.
func (v *TaskCollection) IsUniqueDescription(desc string, exclude service.ID) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, t := range v.tasks {
		if !exclude.IsZero() && t.TaskID == exclude {
			continue
		}
		if t.Description == desc {
			return false
		}
	}
	return true
}

// OpenAddForm switches to adding mode and returns a form over a blank task
// due today with low priority. Any edit in progress is abandoned.
func (v *TaskCollection) OpenAddForm() *TaskForm {
	v.mu.Lock()
	v.mode = EditMode{Kind: EditAdding}
	listID := v.listID
	v.mu.Unlock()

	return form.New(service.NewTask(listID, v.now()), v.Cancel, v.IsUniqueDescription, v.CreateTask)
}

// OpenEditForm switches to editing the given task and returns a form over its
// current values. Completed tasks cannot be edited.
func (v *TaskCollection) OpenEditForm(id service.ID) (*TaskForm, error) {
	v.mu.Lock()
	task, ok := v.findLocked(id)
	if !ok {
		v.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if task.IsComplete {
		v.mu.Unlock()
		return nil, ErrTaskComplete
	}
	v.mode = EditMode{Kind: EditEditing, TaskID: id}
	v.mu.Unlock()

	return form.New(task, v.Cancel, v.IsUniqueDescription, v.EditTask), nil
}

// Cancel closes whichever form is open.
func (v *TaskCollection) Cancel() {
	v.mu.Lock()
	v.mode = EditMode{}
	v.mu.Unlock()
}

// CreateTask sends a new task to the backend. On success the add form is
// closed and the list reloaded; on failure nothing changes but the visible error.
func (v *TaskCollection) CreateTask(ctx context.Context, task service.Task) error {
	listID := v.ListID()
	task.TaskID = ""
	task.ListID = listID
	if err := task.Validate(); err != nil {
		return err
	}
	if err := v.svc.CreateTask(ctx, listID, task); err != nil {
		v.setErr(fmt.Errorf("create task: %w", err))
		return err
	}
	v.log.WithField("description", task.Description).Debug("task created")
	v.closeIf(EditAdding)
	_ = v.Load(ctx)
	return nil
}

// EditTask replaces a task on the backend. On success edit mode is cleared and
// the list reloaded.
func (v *TaskCollection) EditTask(ctx context.Context, task service.Task) error {
	if task.TaskID.IsZero() {
		return fmt.Errorf("%w: task has no id", ErrTaskNotFound)
	}
	if err := task.Validate(); err != nil {
		return err
	}
	if err := v.svc.EditTask(ctx, task); err != nil {
		v.setErr(fmt.Errorf("edit task %s: %w", task.TaskID, err))
		return err
	}
	v.log.WithField("task", task.TaskID).Debug("task edited")
	v.closeIf(EditEditing)
	_ = v.Load(ctx)
	return nil
}

// DeleteTask deletes a task and reloads whatever the outcome.
func (v *TaskCollection) DeleteTask(ctx context.Context, id service.ID) error {
	delErr := v.svc.DeleteTask(ctx, id)
	if delErr != nil {
		v.log.WithError(delErr).WithField("task", id).Debug("delete task failed")
	}
	loadErr := v.Load(ctx)
	if delErr != nil {
		delErr = fmt.Errorf("delete task %s: %w", id, delErr)
		v.setErr(delErr)
		return delErr
	}
	return loadErr
}

// closeIf resets the mode when it is still of the given kind; a form opened
// while the request was in flight stays open.
func (v *TaskCollection) closeIf(kind EditKind) {
	v.mu.Lock()
	if v.mode.Kind == kind {
		v.mode = EditMode{}
	}
	v.mu.Unlock()
}

func (v *TaskCollection) setErr(err error) {
	v.mu.Lock()
	v.lastErr = err
	v.mu.Unlock()
}
