package ui

import (
	"fmt"
	"strings"
	"time"

	"taskdeck/internal/api"
	"taskdeck/internal/task"
)

// formState drives the add/edit editor: one text input cycling through
// the task fields. taskID zero means a new task.
type formState struct {
	taskID    int64
	completed bool

	text     string
	date     string
	timeOf   string
	priority string
	index    int
}

func newForm() *formState {
	return &formState{priority: string(task.PriorityMedium)}
}

func formFromTask(t task.Task) *formState {
	return &formState{
		taskID:    t.ID,
		completed: t.Completed,
		text:      t.Text,
		date:      t.DueDate,
		timeOf:    t.DueTime,
		priority:  string(t.Priority),
	}
}

func formFields() []string {
	return []string{"task", "due date (YYYY-MM-DD)", "due time (HH:MM)", "priority (low/medium/high)"}
}

func (f formState) currentLabel() string {
	return formFields()[f.index]
}

func (f formState) currentValue() string {
	switch f.index {
	case 0:
		return f.text
	case 1:
		return f.date
	case 2:
		return f.timeOf
	case 3:
		return f.priority
	default:
		return ""
	}
}

func (f *formState) setCurrentValue(v string) {
	switch f.index {
	case 0:
		f.text = v
	case 1:
		f.date = v
	case 2:
		f.timeOf = v
	case 3:
		f.priority = v
	}
}

// validate checks the form locally, before any network call. It returns
// a user-facing message on the first problem found.
func (f formState) validate() (api.NewTask, string) {
	text := strings.TrimSpace(f.text)
	if text == "" {
		return api.NewTask{}, "Task text cannot be empty"
	}

	date := strings.TrimSpace(f.date)
	if date != "" {
		if _, err := time.Parse(task.DateLayout, date); err != nil {
			return api.NewTask{}, "Due date must be YYYY-MM-DD"
		}
	}

	clock := strings.TrimSpace(f.timeOf)
	if clock != "" {
		if _, err := time.Parse(task.TimeLayout, clock); err != nil {
			return api.NewTask{}, "Due time must be HH:MM"
		}
	}

	priority, ok := task.ParsePriority(f.priority)
	if !ok {
		return api.NewTask{}, "Priority must be low, medium, or high"
	}

	return api.NewTask{Text: text, DueDate: date, DueTime: clock, Priority: priority}, ""
}

// asTask builds the wholesale replacement record for edits.
func (f formState) asTask(nt api.NewTask) task.Task {
	return task.Task{
		ID:        f.taskID,
		Text:      nt.Text,
		DueDate:   nt.DueDate,
		DueTime:   nt.DueTime,
		Priority:  nt.Priority,
		Completed: f.completed,
	}
}

func (m Model) renderFormBox() string {
	if m.form == nil {
		return ""
	}
	fields := formFields()
	values := []string{m.form.text, m.form.date, m.form.timeOf, m.form.priority}

	var b strings.Builder
	for i, name := range fields {
		prefix := " "
		if i == m.form.index {
			prefix = ">"
		}
		val := values[i]
		if strings.TrimSpace(val) == "" {
			val = "(empty)"
		}
		b.WriteString(fmt.Sprintf("%s %-26s : %s\n", prefix, name, val))
	}
	return b.String()
}
