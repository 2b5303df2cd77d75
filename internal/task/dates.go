package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for due dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for due times.
	TimeLayout = "15:04"
)

// DueAt combines a due date and optional due time into a local instant.
// A missing time means midnight. Returns false when there is no due date
// or it does not parse.
func DueAt(dueDate, dueTime string, loc *time.Location) (time.Time, bool) {
	if dueDate == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(DateLayout, dueDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	if dueTime == "" {
		return d, true
	}
	hm, err := time.Parse(TimeLayout, dueTime)
	if err != nil {
		return d, true
	}
	return d.Add(time.Duration(hm.Hour())*time.Hour + time.Duration(hm.Minute())*time.Minute), true
}

// Countdown renders the remaining time until the due instant.
//
// The day bucket is floor((due-now)/24h), measured from the current moment
// rather than midnight, so a task due 25 hours out reads "Due tomorrow"
// even when that crosses two calendar dates. That matches the shipped
// behavior and is kept on purpose.
func Countdown(dueDate, dueTime string, now time.Time) string {
	due, ok := DueAt(dueDate, dueTime, now.Location())
	if !ok {
		return ""
	}

	diff := due.Sub(now)
	days := floorDiv(diff, 24*time.Hour)
	hours := floorDiv(diff-time.Duration(days)*24*time.Hour, time.Hour)
	mins := floorDiv(diff-time.Duration(days)*24*time.Hour-time.Duration(hours)*time.Hour, time.Minute)

	switch {
	case days > 1:
		return fmt.Sprintf("%d days left", days)
	case days == 1:
		return "Due tomorrow"
	case days == 0 && hours > 0:
		return fmt.Sprintf("Due in %dh %dm", hours, mins)
	case days == 0 && hours == 0 && mins > 0:
		return fmt.Sprintf("Due in %dm", mins)
	case days == 0 && hours == 0 && mins == 0:
		return "Due now!"
	case diff < 0:
		return "Overdue"
	}
	return ""
}

// floorDiv divides rounding toward negative infinity, so that a past due
// instant lands in the negative-day bucket instead of "Due now!".
func floorDiv(d, unit time.Duration) int64 {
	q := int64(d / unit)
	if d%unit != 0 && (d < 0) != (unit < 0) {
		q--
	}
	return q
}

// IsOverdue reports whether the due instant is strictly in the past.
// Tasks without a due date are never overdue.
func IsOverdue(dueDate, dueTime string, now time.Time) bool {
	due, ok := DueAt(dueDate, dueTime, now.Location())
	if !ok {
		return false
	}
	return due.Before(now)
}

// FormatClock converts a 24h "HH:MM" string to "H:MM AM/PM".
// Hour 0 reads 12 AM, hour 12 reads 12 PM.
func FormatClock(hhmm string) string {
	if hhmm == "" {
		return ""
	}
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, parts[1], ampm)
}

// FormatDate renders a wire date for display, e.g. "Jan 5, 2026".
func FormatDate(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Jan 2, 2006")
}
