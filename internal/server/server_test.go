package server

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"

	"taskdeck/internal/api"
	"taskdeck/internal/task"
)

func newTestServer(t *testing.T) (*httptest.Server, *Store) {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	e := echo.New()
	New(store, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(e)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv, store
}

// The client and server are exercised together through the real REST
// contract; this is the end-to-end path the TUI uses.
func TestTaskLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	c := api.NewClient(srv.URL + "/api")
	ctx := context.Background()

	tasks, err := c.ListTasks(ctx)
	if err != nil {
		t.Fatalf("initial list: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("fresh store has %d tasks", len(tasks))
	}

	created, err := c.CreateTask(ctx, api.NewTask{
		Text: "Pay rent", DueDate: "2099-01-01", DueTime: "09:00", Priority: task.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("server did not assign an id")
	}
	if created.Completed {
		t.Error("new task should start incomplete")
	}

	created.Completed = true
	updated, err := c.UpdateTask(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed {
		t.Error("completed flag not persisted")
	}

	tasks, err = c.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].Completed || tasks[0].Text != "Pay rent" {
		t.Errorf("snapshot = %+v", tasks)
	}

	if err := c.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	tasks, _ = c.ListTasks(ctx)
	if len(tasks) != 0 {
		t.Errorf("task survived delete: %+v", tasks)
	}
}

func TestCreateValidation(t *testing.T) {
	srv, store := newTestServer(t)
	c := api.NewClient(srv.URL + "/api")
	ctx := context.Background()

	tests := []struct {
		name string
		in   api.NewTask
	}{
		{"empty text", api.NewTask{Text: "   ", Priority: task.PriorityLow}},
		{"bad due date", api.NewTask{Text: "x", DueDate: "01/02/2024", Priority: task.PriorityLow}},
		{"bad due time", api.NewTask{Text: "x", DueTime: "9am", Priority: task.PriorityLow}},
		{"bad priority", api.NewTask{Text: "x", Priority: "urgent"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.CreateTask(ctx, tc.in); err == nil {
				t.Errorf("create accepted %+v", tc.in)
			}
		})
	}

	stored, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("invalid creates reached the store: %+v", stored)
	}
}

func TestUpdateUnknownIDIs404(t *testing.T) {
	srv, _ := newTestServer(t)
	c := api.NewClient(srv.URL + "/api")

	_, err := c.UpdateTask(context.Background(), task.Task{ID: 42, Text: "ghost", Priority: task.PriorityMedium})
	if err == nil {
		t.Fatal("update of unknown id succeeded")
	}
	if err := c.DeleteTask(context.Background(), 42); err == nil {
		t.Fatal("delete of unknown id succeeded")
	}
}

func TestCreateDefaultsPriorityToMedium(t *testing.T) {
	srv, _ := newTestServer(t)
	c := api.NewClient(srv.URL + "/api")

	created, err := c.CreateTask(context.Background(), api.NewTask{Text: "defaults"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Priority != task.PriorityMedium {
		t.Errorf("priority = %q, want medium", created.Priority)
	}
}

func TestStoreOrderIsInsertionOrder(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	for _, text := range []string{"first", "second", "third"} {
		if _, err := store.CreateTask(ctx, task.Task{Text: text, Priority: task.PriorityMedium}); err != nil {
			t.Fatalf("create %s: %v", text, err)
		}
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 3 || tasks[0].Text != "first" || tasks[2].Text != "third" {
		t.Errorf("order = %+v", tasks)
	}
}
