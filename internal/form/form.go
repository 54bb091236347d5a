// Package form provides the generic create/edit form shared by the list and
// task views. A form only validates and delegates: it never talks to the backend.
package form

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotUnique is returned by Submit when the validation predicate rejects the name.
	ErrNotUnique = errors.New("name already in use")

	// ErrBlankName is returned by Submit when the name is empty or whitespace.
	ErrBlankName = errors.New("name required")

	// ErrClosed is returned when a form is used after it was submitted or cancelled.
	ErrClosed = errors.New("form closed")
)

// Entry is an entity a form can edit: it has a name that must be unique and a
// key identifying the stored record (zero for a new entity).
type Entry[K comparable] interface {
	EntryName() string
	EntryKey() K
}

// Validator reports whether name may be used. exclude is the key of the
// entity being edited so that keeping its own name is allowed.
type Validator[K comparable] func(name string, exclude K) bool

// SaveFunc persists an entity. The caller owns submission and refresh.
type SaveFunc[E any] func(ctx context.Context, entity E) error

// Form edits a single entity.
type Form[K comparable, E Entry[K]] struct {
	entity   E
	isNew    bool
	closed   bool
	onCancel func()
	validate Validator[K]
	onSave   SaveFunc[E]
}

// New creates a form over entity. The form keeps its own copy; changes made
// through Edit are discarded on Cancel.
func New[K comparable, E Entry[K]](entity E, onCancel func(), validate Validator[K], onSave SaveFunc[E]) *Form[K, E] {
	var zero K
	return &Form[K, E]{
		entity:   entity,
		isNew:    entity.EntryKey() == zero,
		onCancel: onCancel,
		validate: validate,
		onSave:   onSave,
	}
}

// Entity returns the current values of the form.
func (f *Form[K, E]) Entity() E {
	return f.entity
}

// IsNew reports whether the form creates a new entity rather than editing one.
func (f *Form[K, E]) IsNew() bool {
	return f.isNew
}

// Edit applies fn to the form's copy of the entity.
func (f *Form[K, E]) Edit(fn func(e *E)) {
	fn(&f.entity)
}

// Valid runs the checks Submit runs without saving.
func (f *Form[K, E]) Valid() error {
	name := f.entity.EntryName()
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	if f.validate != nil && !f.validate(name, f.entity.EntryKey()) {
		return ErrNotUnique
	}
	return nil
}

// Submit validates the entity and hands it to the save callback.
// A rejected entity is never passed to the callback.
// The form stays open if saving fails so the user can retry.
func (f *Form[K, E]) Submit(ctx context.Context) error {
	if f.closed {
		return ErrClosed
	}
	if err := f.Valid(); err != nil {
		return err
	}
	if f.onSave != nil {
		if err := f.onSave(ctx, f.entity); err != nil {
			return err
		}
	}
	f.closed = true
	return nil
}

// Cancel discards the form and invokes the cancel callback.
func (f *Form[K, E]) Cancel() {
	if f.closed {
		return
	}
	f.closed = true
	if f.onCancel != nil {
		f.onCancel()
	}
}
