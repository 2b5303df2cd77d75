package task

// Status selects which completion states are visible.
type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// ParseStatus normalizes a status filter name. Unknown values map to all.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusActive:
		return StatusActive
	case StatusCompleted:
		return StatusCompleted
	default:
		return StatusAll
	}
}

// Filter returns the visible subsequence of tasks, in snapshot order.
// Status narrows by completion; a non-empty dueDate further restricts to
// tasks whose due date matches it exactly (string equality, no ranges).
func Filter(tasks []Task, status Status, dueDate string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		switch status {
		case StatusActive:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if dueDate != "" && t.DueDate != dueDate {
			continue
		}
		out = append(out, t)
	}
	return out
}
