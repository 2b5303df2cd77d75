// Package task holds the task model and the pure list/date logic the UI
// renders from: filtering, countdowns, overdue checks and the weekly
// calendar buckets.
package task

import "strings"

// Priority levels accepted by the backend.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes user input into a Priority.
// Empty input falls back to medium.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	default:
		return "", false
	}
}

// Task mirrors the backend record. The JSON names are the wire contract.
type Task struct {
	ID        int64    `json:"id"`
	Text      string   `json:"text"`
	DueDate   string   `json:"dueDate,omitempty"`
	DueTime   string   `json:"dueTime,omitempty"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
}

// Counts returns how many tasks are still open and the snapshot total.
func Counts(tasks []Task) (active, total int) {
	for _, t := range tasks {
		if !t.Completed {
			active++
		}
	}
	return active, len(tasks)
}
