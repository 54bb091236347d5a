// Package service defines the backend-agnostic interface for list and task operations.
package service

import "context"

// Service defines the interface for to-do backend operations.
// All REST calls go through this interface.
// Views and commands never import the HTTP client directly.
type Service interface {
	// ListLists returns all lists with their tasks in backend order.
	ListLists(ctx context.Context) ([]TodoList, error)

	// GetList returns one list (title and tasks) by id.
	// Tasks are in backend order (no client-side sorting).
	GetList(ctx context.Context, listID ID) (TodoList, error)

	// CreateList creates a new list with the given title.
	CreateList(ctx context.Context, title string) error

	// DeleteList deletes a list by id.
	DeleteList(ctx context.Context, listID ID) error

	// CreateTask creates a task in the given list.
	// task.TaskID is ignored and sent as null.
	CreateTask(ctx context.Context, listID ID, task Task) error

	// EditTask replaces the task identified by task.TaskID.
	// The whole record is sent; this is not a patch.
	EditTask(ctx context.Context, task Task) error

	// DeleteTask deletes a task by id.
	DeleteTask(ctx context.Context, taskID ID) error
}
