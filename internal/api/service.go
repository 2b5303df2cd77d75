// Package api talks to the task backend. The UI only sees the Service
// interface; the REST client below is the real implementation.
package api

import (
	"context"

	"taskdeck/internal/task"
)

// NewTask is the create payload. The server assigns the id.
type NewTask struct {
	Text     string        `json:"text"`
	DueDate  string        `json:"dueDate"`
	DueTime  string        `json:"dueTime"`
	Priority task.Priority `json:"priority"`
}

// Service defines the backend operations the UI depends on.
// Every mutation is followed by a fresh ListTasks before re-rendering,
// so the client never shows unconfirmed state.
type Service interface {
	// ListTasks returns the full snapshot in server order.
	ListTasks(ctx context.Context) ([]task.Task, error)

	// CreateTask creates a task; the returned record carries the
	// server-assigned id.
	CreateTask(ctx context.Context, nt NewTask) (task.Task, error)

	// UpdateTask replaces the identified task wholesale.
	UpdateTask(ctx context.Context, t task.Task) (task.Task, error)

	// DeleteTask removes a task by id.
	DeleteTask(ctx context.Context, id int64) error
}
