package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"taskdeck/internal/task"
)

// Server wires the REST handlers to the store.
type Server struct {
	store *Store
	log   *slog.Logger
}

func New(store *Store, log *slog.Logger) *Server {
	return &Server{store: store, log: log}
}

// Register mounts the task routes on the echo instance.
func (s *Server) Register(e *echo.Echo) {
	g := e.Group("/api/tasks")
	g.GET("", s.listTasks)
	g.POST("", s.createTask)
	g.PUT("/:id", s.updateTask)
	g.DELETE("/:id", s.deleteTask)
}

// createTaskIn is the POST payload.
type createTaskIn struct {
	Text     string `json:"text"`
	DueDate  string `json:"dueDate"`
	DueTime  string `json:"dueTime"`
	Priority string `json:"priority"`
}

// updateTaskIn is the PUT payload. Pointer fields distinguish "absent"
// from "set to empty": only provided fields change.
type updateTaskIn struct {
	Text      *string `json:"text"`
	DueDate   *string `json:"dueDate"`
	DueTime   *string `json:"dueTime"`
	Priority  *string `json:"priority"`
	Completed *bool   `json:"completed"`
}

func (s *Server) listTasks(c echo.Context) error {
	tasks, err := s.store.ListTasks(c.Request().Context())
	if err != nil {
		s.log.Error("list tasks", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) createTask(c echo.Context) error {
	var in createTaskIn
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if strings.TrimSpace(in.Text) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required field: text"})
	}
	if msg := validateDueDate(in.DueDate); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if msg := validateDueTime(in.DueTime); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	priority, ok := task.ParsePriority(in.Priority)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "priority must be low, medium or high"})
	}

	created, err := s.store.CreateTask(c.Request().Context(), task.Task{
		Text:     in.Text,
		DueDate:  in.DueDate,
		DueTime:  in.DueTime,
		Priority: priority,
	})
	if err != nil {
		s.log.Error("create task", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	s.log.Info("task created", "id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateTask(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var in updateTaskIn
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}

	current, err := s.store.GetTask(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}
	if err != nil {
		s.log.Error("get task", "error", err, "id", id)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if in.Text != nil {
		if strings.TrimSpace(*in.Text) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "text cannot be empty"})
		}
		current.Text = *in.Text
	}
	if in.DueDate != nil {
		if msg := validateDueDate(*in.DueDate); msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}
		current.DueDate = *in.DueDate
	}
	if in.DueTime != nil {
		if msg := validateDueTime(*in.DueTime); msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}
		current.DueTime = *in.DueTime
	}
	if in.Priority != nil {
		priority, ok := task.ParsePriority(*in.Priority)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "priority must be low, medium or high"})
		}
		current.Priority = priority
	}
	if in.Completed != nil {
		current.Completed = *in.Completed
	}

	updated, err := s.store.UpdateTask(c.Request().Context(), current)
	if err != nil {
		s.log.Error("update task", "error", err, "id", id)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteTask(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	err = s.store.DeleteTask(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}
	if err != nil {
		s.log.Error("delete task", "error", err, "id", id)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	s.log.Info("task deleted", "id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted"})
}

func validateDueDate(v string) string {
	if v == "" {
		return ""
	}
	if _, err := time.Parse(task.DateLayout, v); err != nil {
		return "invalid dueDate format; use YYYY-MM-DD"
	}
	return ""
}

func validateDueTime(v string) string {
	if v == "" {
		return ""
	}
	if _, err := time.Parse(task.TimeLayout, v); err != nil {
		return "invalid dueTime format; use HH:MM"
	}
	return ""
}
