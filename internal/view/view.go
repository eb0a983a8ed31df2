// Package view holds the in-memory task list that front ends operate on.
//
// A View is loaded once from a service.Service and then mutated only through
// its intents (Add, Toggle, Remove). Every intent writes through to the
// service before the in-memory collection changes, so a failed write leaves
// the View exactly as it was.
package view

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todofs/internal/service"
	"todofs/internal/storage"
)

var (
	// ErrBlankName is returned when adding a task with an empty or
	// whitespace-only name.
	ErrBlankName = errors.New("task name required")

	// ErrDuplicateName is returned when adding a task whose name already
	// exists in the list.
	ErrDuplicateName = errors.New("task already exists")

	// ErrOutOfRange is returned for an index outside the collection.
	ErrOutOfRange = errors.New("task number out of range")
)

// View is an ordered, mutable collection of tasks bound to one list.
type View struct {
	svc   service.Service
	list  string
	tasks []service.Task
}

// Load enumerates a list through svc and seeds a View with it.
func Load(ctx context.Context, svc service.Service, list string) (*View, error) {
	tasks, err := svc.ListTasks(ctx, list)
	if err != nil {
		return nil, err
	}
	return &View{
		svc:   svc,
		list:  list,
		tasks: tasks,
	}, nil
}

// List returns the name of the list this view is bound to.
func (v *View) List() string {
	return v.list
}

// Len returns the number of tasks.
func (v *View) Len() int {
	return len(v.tasks)
}

// Tasks returns a copy of the collection in order.
func (v *View) Tasks() []service.Task {
	out := make([]service.Task, len(v.tasks))
	copy(out, v.tasks)
	return out
}

// Task returns the i-th task (0-based).
func (v *View) Task(i int) (service.Task, error) {
	if i < 0 || i >= len(v.tasks) {
		return service.Task{}, fmt.Errorf("%w: %d", ErrOutOfRange, i+1)
	}
	return v.tasks[i], nil
}

// Index returns the position of the task with the given name, or -1.
func (v *View) Index(name string) int {
	for i, t := range v.tasks {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// Add appends a new, not-done task and persists it immediately.
func (v *View) Add(ctx context.Context, name string) (service.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return service.Task{}, ErrBlankName
	}
	if err := storage.ValidateName(name); err != nil {
		return service.Task{}, err
	}
	if v.Index(name) >= 0 {
		return service.Task{}, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	task := service.Task{Name: name, Done: false}
	if err := v.svc.SaveTask(ctx, v.list, task); err != nil {
		return service.Task{}, err
	}
	v.tasks = append(v.tasks, task)
	return task, nil
}

// Toggle flips the done flag of the i-th task and persists the new value.
func (v *View) Toggle(ctx context.Context, i int) (service.Task, error) {
	task, err := v.Task(i)
	if err != nil {
		return service.Task{}, err
	}

	task.Done = !task.Done
	if err := v.svc.SaveTask(ctx, v.list, task); err != nil {
		return service.Task{}, err
	}
	v.tasks[i] = task
	return task, nil
}

// Remove deletes the i-th task from the store and from the collection.
func (v *View) Remove(ctx context.Context, i int) (service.Task, error) {
	task, err := v.Task(i)
	if err != nil {
		return service.Task{}, err
	}

	if err := v.svc.DeleteTask(ctx, v.list, task.Name); err != nil {
		return service.Task{}, err
	}
	v.tasks = append(v.tasks[:i], v.tasks[i+1:]...)
	return task, nil
}
