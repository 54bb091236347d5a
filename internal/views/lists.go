// Package views holds the state of the two screens of the client: the
// collection of lists and the tasks of one list. Both surfaces (command line
// and interactive UI) drive these types; they own fetching, refresh after
// mutation, validation wiring and edit-mode state.
//
// Every fetch replaces the whole collection; nothing is patched in place and
// no update is applied before the backend has accepted it.
package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"todoctl/internal/form"
	"todoctl/internal/logging"
	"todoctl/internal/service"
)

// ListForm is the entry form for creating a list.
type ListForm = form.Form[service.ID, service.TodoList]

// ListRow is one rendered row of the list collection.
type ListRow struct {
	ID        service.ID
	Title     string
	Total     int
	Remaining int
	Completed bool
}

// ListCollection is the landing screen: all lists with a completion summary.
type ListCollection struct {
	svc service.Service
	log logrus.FieldLogger

	mu      sync.RWMutex
	lists   []service.TodoList
	loaded  bool
	adding  bool
	lastErr error
}

// NewListCollection creates the view. Call Load to fetch data.
func NewListCollection(svc service.Service, log logrus.FieldLogger) *ListCollection {
	if log == nil {
		log = logging.Discard()
	}
	return &ListCollection{svc: svc, log: log.WithField("view", "lists")}
}

// Load fetches all lists. On failure the previous collection is kept and the
// error becomes the view's visible error.
func (v *ListCollection) Load(ctx context.Context) error {
	lists, err := v.svc.ListLists(ctx)
	if err != nil {
		v.log.WithError(err).Debug("load lists failed")
		v.setErr(fmt.Errorf("load lists: %w", err))
		return err
	}

	v.mu.Lock()
	v.lists = lists
	v.loaded = true
	v.lastErr = nil
	v.mu.Unlock()
	v.log.WithField("count", len(lists)).Debug("lists loaded")
	return nil
}

// Loaded reports whether at least one fetch has succeeded.
func (v *ListCollection) Loaded() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loaded
}

// Lists returns a copy of the loaded lists.
func (v *ListCollection) Lists() []service.TodoList {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]service.TodoList, len(v.lists))
	copy(out, v.lists)
	return out
}

// Rows returns the rendered rows in backend order.
func (v *ListCollection) Rows() []ListRow {
	v.mu.RLock()
	defer v.mu.RUnlock()
	rows := make([]ListRow, len(v.lists))
	for i, l := range v.lists {
		rows[i] = ListRow{
			ID:        l.ID,
			Title:     l.Title,
			Total:     len(l.Tasks),
			Remaining: l.Remaining(),
			Completed: l.Completed(),
		}
	}
	return rows
}

// Err returns the last failure, or nil after a successful load.
func (v *ListCollection) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lastErr
}

// Adding reports whether the creation form is open.
func (v *ListCollection) Adding() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.adding
}

// IsUniqueTitle reports whether no loaded list has exactly this title.
// exclude is ignored for lists since titles cannot be edited.
func (v *ListCollection) IsUniqueTitle(title string, _ service.ID) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, l := range v.lists {
		if l.Title == title {
			return false
		}
	}
	return true
}

// OpenAddForm opens the creation form with a blank list.
func (v *ListCollection) OpenAddForm() *ListForm {
	v.mu.Lock()
	v.adding = true
	v.mu.Unlock()
	return form.New(service.TodoList{}, v.closeAddForm, v.IsUniqueTitle, v.save)
}

func (v *ListCollection) closeAddForm() {
	v.mu.Lock()
	v.adding = false
	v.mu.Unlock()
}

// CreateList opens a form, fills in title and submits it.
func (v *ListCollection) CreateList(ctx context.Context, title string) error {
	f := v.OpenAddForm()
	f.Edit(func(l *service.TodoList) { l.Title = strings.TrimSpace(title) })
	if err := f.Submit(ctx); err != nil {
		if errors.Is(err, form.ErrNotUnique) || errors.Is(err, form.ErrBlankName) {
			f.Cancel()
		}
		return err
	}
	return nil
}

func (v *ListCollection) save(ctx context.Context, l service.TodoList) error {
	if err := v.svc.CreateList(ctx, l.Title); err != nil {
		v.setErr(fmt.Errorf("create list: %w", err))
		return err
	}
	v.log.WithField("title", l.Title).Debug("list created")
	v.closeAddForm()
	// A failed reload is reported through Err; the create itself succeeded.
	_ = v.Load(ctx)
	return nil
}

// DeleteList deletes a list without confirmation and reloads whatever the
// outcome. The delete error, if any, is returned and kept as the visible error.
func (v *ListCollection) DeleteList(ctx context.Context, id service.ID) error {
	delErr := v.svc.DeleteList(ctx, id)
	if delErr != nil {
		v.log.WithError(delErr).WithField("id", id).Debug("delete list failed")
	}
	loadErr := v.Load(ctx)
	if delErr != nil {
		delErr = fmt.Errorf("delete list: %w", delErr)
		v.setErr(delErr)
		return delErr
	}
	return loadErr
}

func (v *ListCollection) setErr(err error) {
	v.mu.Lock()
	v.lastErr = err
	v.mu.Unlock()
}
