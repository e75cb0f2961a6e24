// Package testutil provides fakes and golden-file helpers for tests.
package testutil

import (
	"context"
	"errors"
	"fmt"

	"listdeck/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// FakeService is an in-memory service.Service for testing push.
type FakeService struct {
	lists []service.TaskList
	tasks map[string][]service.Task // listID -> tasks

	// Error injection
	DefaultListErr error
	ListListsErr   error
	CreateListErr  error
	CreateTaskErr  error

	// FailAfter makes CreateTask fail once this many tasks were created.
	// Zero disables it.
	FailAfter int
	created   int
}

// NewFakeService creates a FakeService holding only the default list.
func NewFakeService() *FakeService {
	return &FakeService{
		lists: []service.TaskList{{ID: DefaultListID, Title: "My Tasks", IsDefault: true}},
		tasks: make(map[string][]service.Task),
	}
}

// AddList adds a named list.
func (f *FakeService) AddList(id, title string) {
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title})
}

// Tasks returns what was published to listID.
func (f *FakeService) Tasks(listID string) []service.Task {
	return f.tasks[listID]
}

// Lists returns every list, including created ones.
func (f *FakeService) Lists() []service.TaskList {
	out := make([]service.TaskList, len(f.lists))
	copy(out, f.lists)
	return out
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return service.TaskList{}, errors.New("no default list")
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context) ([]service.TaskList, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	return f.Lists(), nil
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	lists, err := f.ListLists(ctx)
	if err != nil {
		return service.TaskList{}, err
	}
	return service.MatchList(lists, name)
}

// CreateList implements service.Service.
func (f *FakeService) CreateList(ctx context.Context, name string) (service.TaskList, error) {
	if f.CreateListErr != nil {
		return service.TaskList{}, f.CreateListErr
	}
	l := service.TaskList{ID: fmt.Sprintf("list-%d", len(f.lists)), Title: name}
	f.lists = append(f.lists, l)
	return l, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID string, task service.Task) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	if f.FailAfter > 0 && f.created >= f.FailAfter {
		return errors.New("quota exceeded")
	}
	f.created++
	f.tasks[listID] = append(f.tasks[listID], task)
	return nil
}
