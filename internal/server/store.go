package server

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"taskdeck/internal/task"
)

// ErrNotFound is returned for unknown task ids.
var ErrNotFound = errors.New("task not found")

// Store persists tasks in sqlite.
type Store struct {
	db *sql.DB
}

func OpenStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	due_date TEXT DEFAULT '',
	due_time TEXT DEFAULT '',
	priority TEXT NOT NULL DEFAULT 'medium',
	completed INTEGER NOT NULL DEFAULT 0
);`
	_, err := s.db.Exec(ddl)
	return err
}

// ListTasks returns every task in insertion order.
func (s *Store) ListTasks(ctx context.Context) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text, due_date, due_time, priority, completed FROM tasks ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTask returns one task or ErrNotFound.
func (s *Store) GetTask(ctx context.Context, id int64) (task.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, text, due_date, due_time, priority, completed FROM tasks WHERE id = ?;`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, ErrNotFound
	}
	return t, err
}

// CreateTask inserts a task and returns it with the assigned id.
func (s *Store) CreateTask(ctx context.Context, t task.Task) (task.Task, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (text, due_date, due_time, priority, completed) VALUES (?, ?, ?, ?, ?);`,
		t.Text, t.DueDate, t.DueTime, string(t.Priority), boolToInt(t.Completed))
	if err != nil {
		return task.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return task.Task{}, err
	}
	t.ID = id
	return t, nil
}

// UpdateTask replaces the stored record wholesale.
func (s *Store) UpdateTask(ctx context.Context, t task.Task) (task.Task, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET text = ?, due_date = ?, due_time = ?, priority = ?, completed = ? WHERE id = ?;`,
		t.Text, t.DueDate, t.DueTime, string(t.Priority), boolToInt(t.Completed), t.ID)
	if err != nil {
		return task.Task{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return task.Task{}, err
	}
	if n == 0 {
		return task.Task{}, ErrNotFound
	}
	return t, nil
}

// DeleteTask removes a task, reporting ErrNotFound for unknown ids.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (task.Task, error) {
	var t task.Task
	var priority string
	var completed int
	if err := row.Scan(&t.ID, &t.Text, &t.DueDate, &t.DueTime, &priority, &completed); err != nil {
		return task.Task{}, err
	}
	t.Priority = task.Priority(priority)
	t.Completed = completed == 1
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
