// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// Commands and the interactive mode never touch storage directly.
type Service interface {
	// DefaultList returns the configured default list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all lists. The default list is always included,
	// even before anything has been written to it.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ListTasks returns every task in a list in backend enumeration order.
	// Entries whose status cannot be read are reported as not done.
	ListTasks(ctx context.Context, list string) ([]Task, error)

	// SaveTask creates or overwrites a task.
	SaveTask(ctx context.Context, list string, task Task) error

	// DeleteTask removes a task. Removing a missing task is not an error.
	DeleteTask(ctx context.Context, list, name string) error

	// ClearList removes a list and all of its tasks.
	ClearList(ctx context.Context, list string) error
}
