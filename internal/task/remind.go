package task

import "fmt"

// DueToday returns the incomplete tasks in the visible list whose due
// date equals today (wire format). These are the reminder candidates.
func DueToday(visible []Task, today string) []Task {
	var out []Task
	for _, t := range visible {
		if !t.Completed && t.DueDate != "" && t.DueDate == today {
			out = append(out, t)
		}
	}
	return out
}

// ReminderLog remembers which (task, day) pairs have already been
// announced, so re-rendering the same list does not re-fire the same
// reminder. The log is in-memory only; a restart starts fresh.
type ReminderLog struct {
	seen map[string]struct{}
}

func NewReminderLog() *ReminderLog {
	return &ReminderLog{seen: make(map[string]struct{})}
}

// Fresh filters candidates down to the ones not yet announced today and
// marks them as announced.
func (l *ReminderLog) Fresh(candidates []Task, today string) []Task {
	var out []Task
	for _, t := range candidates {
		key := fmt.Sprintf("%d@%s", t.ID, today)
		if _, ok := l.seen[key]; ok {
			continue
		}
		l.seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
