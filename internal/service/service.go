// Package service defines the backend-agnostic interface push uses to
// publish the task list.
package service

import "context"

// Service is a remote task store. Commands never import a vendor SDK
// directly; they go through this interface.
type Service interface {
	// DefaultList returns the account's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in backend order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// A miss wraps ErrListNotFound or ErrAmbiguousList.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// CreateList creates a task list and returns it.
	CreateList(ctx context.Context, name string) (TaskList, error)

	// CreateTask appends a task to the list.
	CreateTask(ctx context.Context, listID string, task Task) error
}
