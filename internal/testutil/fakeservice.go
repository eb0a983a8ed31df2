// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sort"
	"sync"

	"todofs/internal/service"
)

// DefaultList is the name of the fake's default list.
const DefaultList = "TODO-LIST"

// FakeService is an in-memory implementation of service.Service for testing.
// Tasks keep insertion order; saving an existing name updates it in place.
type FakeService struct {
	mu    sync.RWMutex
	tasks map[string][]service.Task // list -> tasks

	// SaveCalls counts successful SaveTask calls.
	SaveCalls int

	// Error injection for testing
	DefaultListErr error
	ListListsErr   error
	ListTasksErr   map[string]error // list -> error
	SaveTaskErr    error
	DeleteTaskErr  error
	ClearListErr   error
}

// NewFakeService creates a new FakeService with an empty default list.
func NewFakeService() *FakeService {
	return &FakeService{
		tasks:        map[string][]service.Task{DefaultList: nil},
		ListTasksErr: make(map[string]error),
	}
}

// AddTask appends a task to a list, creating the list if needed.
func (f *FakeService) AddTask(list, name string, done bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[list] = append(f.tasks[list], service.Task{Name: name, Done: done})
}

// Task looks up a task directly, bypassing error injection.
func (f *FakeService) Task(list, name string) (service.Task, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks[list] {
		if t.Name == name {
			return t, true
		}
	}
	return service.Task{}, false
}

// HasList reports whether a list exists in the fake.
func (f *FakeService) HasList(list string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.tasks[list]
	return ok
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	return service.TaskList{Name: DefaultList, IsDefault: true}, nil
}

// ListLists implements service.Service. Named lists are sorted after the default.
func (f *FakeService) ListLists(ctx context.Context) ([]service.TaskList, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.tasks))
	for name := range f.tasks {
		if name != DefaultList {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	result := []service.TaskList{{Name: DefaultList, IsDefault: true}}
	for _, name := range names {
		result = append(result, service.TaskList{Name: name})
	}
	return result, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, list string) ([]service.Task, error) {
	if err, ok := f.ListTasksErr[list]; ok && err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]service.Task, len(f.tasks[list]))
	copy(result, f.tasks[list])
	return result, nil
}

// SaveTask implements service.Service.
func (f *FakeService) SaveTask(ctx context.Context, list string, task service.Task) error {
	if f.SaveTaskErr != nil {
		return f.SaveTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.SaveCalls++
	for i, t := range f.tasks[list] {
		if t.Name == task.Name {
			f.tasks[list][i] = task
			return nil
		}
	}
	f.tasks[list] = append(f.tasks[list], task)
	return nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, list, name string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks := f.tasks[list]
	for i, t := range tasks {
		if t.Name == name {
			f.tasks[list] = append(tasks[:i], tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

// ClearList implements service.Service.
func (f *FakeService) ClearList(ctx context.Context, list string) error {
	if f.ClearListErr != nil {
		return f.ClearListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if list == DefaultList {
		f.tasks[DefaultList] = nil
		return nil
	}
	delete(f.tasks, list)
	return nil
}
