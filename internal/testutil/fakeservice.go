// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"taskdeck/internal/api"
	"taskdeck/internal/task"
)

// ErrNotFound is returned when a task id is unknown.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of api.Service for tests.
type FakeService struct {
	mu     sync.Mutex
	tasks  []task.Task
	nextID int64

	// Error injection
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error

	// Call counters, for asserting that validation short-circuits
	// before the network layer.
	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

// NewFakeService creates an empty fake backend.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// Seed installs a snapshot, assigning ids past the largest seeded one.
func (f *FakeService) Seed(tasks ...task.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, tasks...)
	for _, t := range tasks {
		if t.ID >= f.nextID {
			f.nextID = t.ID + 1
		}
	}
}

// Tasks returns a copy of the current backend state.
func (f *FakeService) Tasks() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// ListTasks implements api.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// CreateTask implements api.Service.
func (f *FakeService) CreateTask(ctx context.Context, nt api.NewTask) (task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateErr != nil {
		return task.Task{}, f.CreateErr
	}
	t := task.Task{
		ID:       f.nextID,
		Text:     nt.Text,
		DueDate:  nt.DueDate,
		DueTime:  nt.DueTime,
		Priority: nt.Priority,
	}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t, nil
}

// UpdateTask implements api.Service.
func (f *FakeService) UpdateTask(ctx context.Context, t task.Task) (task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return task.Task{}, f.UpdateErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == t.ID {
			f.tasks[i] = t
			return t, nil
		}
	}
	return task.Task{}, ErrNotFound
}

// DeleteTask implements api.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
