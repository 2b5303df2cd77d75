package ui

import (
	"fmt"
	"strings"

	"taskdeck/internal/task"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Taskdeck"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtle.Render(m.headerLine()))
	b.WriteString("\n\n")

	switch {
	case m.loading && !m.loaded:
		b.WriteString(m.spin.View())
		b.WriteString(" Loading tasks...\n")
	case m.loadErr != "":
		b.WriteString(m.theme.ErrorMsg.Render("Unable to load tasks"))
		b.WriteString("\n")
		b.WriteString(m.theme.Subtle.Render(m.loadErr))
		b.WriteString("\n")
	case m.showCalendar:
		b.WriteString(m.renderCalendar())
	default:
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n---\n")

	if m.form != nil {
		b.WriteString("Field: " + m.form.currentLabel())
		b.WriteString("\n")
		b.WriteString(m.renderFormBox())
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else if m.mode == modeDateFilter {
		b.WriteString("Due date filter\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.helpLine()))
	return b.String()
}

func (m Model) headerLine() string {
	active, total := task.Counts(m.tasks)
	line := fmt.Sprintf("%d active of %d tasks • filter: %s", active, total, m.filter)
	if m.filterDate != "" {
		line += " • due: " + m.filterDate
	}
	if m.showCalendar {
		line += " • calendar"
	}
	return line
}

func (m Model) renderTaskList() string {
	vis := m.visible()
	if len(vis) == 0 {
		return m.emptyMessage() + "\n"
	}

	now := m.now()
	var b strings.Builder
	for i, t := range vis {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = m.theme.Cursor.Render(">")
		}

		checkbox := "[ ]"
		text := t.Text
		if t.Completed {
			checkbox = "[x]"
			text = m.theme.Done.Render(text)
		} else if task.IsOverdue(t.DueDate, t.DueTime, now) {
			text = m.theme.Overdue.Render(text)
		}

		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, checkbox, text, m.priorityBadge(t.Priority)))

		if t.DueDate != "" {
			meta := "Due: " + task.FormatDate(t.DueDate)
			if t.DueTime != "" {
				meta += " " + task.FormatClock(t.DueTime)
			}
			if cd := task.Countdown(t.DueDate, t.DueTime, now); cd != "" {
				meta += " (" + cd + ")"
			}
			b.WriteString("      " + m.theme.DueMeta.Render(meta) + "\n")
		}
	}
	return b.String()
}

func (m Model) emptyMessage() string {
	msg := "No tasks"
	switch m.filter {
	case task.StatusActive:
		msg = "No active tasks"
	case task.StatusCompleted:
		msg = "No completed tasks"
	}
	if m.filterDate != "" {
		msg = "No tasks due on " + m.filterDate
	}
	return m.theme.Subtle.Render(msg)
}

func (m Model) renderCalendar() string {
	week := task.Week(m.tasks, m.now())
	var b strings.Builder
	for _, day := range week {
		label := day.Label
		if day.Today {
			label = m.theme.Today.Render(label + " (today)")
		}
		b.WriteString(label)
		b.WriteString("\n")
		if len(day.Tasks) == 0 {
			b.WriteString("  " + m.theme.Subtle.Render("no tasks") + "\n")
			continue
		}
		for _, t := range day.Tasks {
			line := "  • " + t.Text
			if t.DueTime != "" {
				line += " " + task.FormatClock(t.DueTime)
			}
			if t.Completed {
				line = m.theme.Done.Render(line + " ✓")
			}
			b.WriteString(line + " " + m.priorityBadge(t.Priority) + "\n")
		}
	}
	return b.String()
}

func (m Model) priorityBadge(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return m.theme.PriorityHigh.Render("[high]")
	case task.PriorityLow:
		return m.theme.PriorityLow.Render("[low]")
	default:
		return m.theme.PriorityMedium.Render("[medium]")
	}
}

func (m Model) helpLine() string {
	k := m.cfg.Keys
	return fmt.Sprintf("%s/%s move • %s add • %s edit • %s toggle • %s delete • %s filter • %s date • %s clear • %s calendar • %s theme • %s refresh • %s quit",
		k.Up, k.Down, k.Add, k.Edit, k.Toggle, k.Delete, k.Filter, k.PickDate, k.ClearDate, k.Calendar, k.Theme, k.Refresh, k.Quit)
}
