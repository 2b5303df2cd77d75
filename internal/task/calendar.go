package task

import (
	"fmt"
	"time"
)

// Day is one column of the weekly calendar.
type Day struct {
	Date  string // wire-format date for this column
	Label string // e.g. "Sun 7/6"
	Today bool
	Tasks []Task
}

// Week buckets the snapshot into the seven days of the current week,
// Sunday first, anchored on the most recent Sunday relative to today.
// Exactly one entry carries the Today flag. Tasks land in a column when
// their due date equals the column date exactly.
func Week(tasks []Task, today time.Time) []Day {
	todayStr := today.Format(DateLayout)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		dateStr := d.Format(DateLayout)

		var matched []Task
		for _, t := range tasks {
			if t.DueDate == dateStr {
				matched = append(matched, t)
			}
		}

		days = append(days, Day{
			Date:  dateStr,
			Label: fmt.Sprintf("%s %d/%d", d.Format("Mon"), d.Day(), int(d.Month())),
			Today: dateStr == todayStr,
			Tasks: matched,
		})
	}
	return days
}
