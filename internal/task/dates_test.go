package task

import (
	"testing"
	"time"
)

var now = time.Date(2024, 1, 10, 14, 0, 0, 0, time.Local)

func TestCountdown(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		want string
	}{
		{"no due date", "", "", ""},
		{"three days out", "2024-01-13", "14:00", "3 days left"},
		{"exactly 25h out", "2024-01-11", "15:00", "Due tomorrow"},
		{"exactly 24h out", "2024-01-11", "14:00", "Due tomorrow"},
		{"same day hours", "2024-01-10", "17:30", "Due in 3h 30m"},
		{"thirty minutes", "2024-01-10", "14:30", "Due in 30m"},
		{"same minute", "2024-01-10", "14:00", "Due now!"},
		{"half hour ago", "2024-01-10", "13:30", "Overdue"},
		{"yesterday", "2024-01-09", "", "Overdue"},
		// Midnight default: 2024-01-11 00:00 is only 10h from 14:00,
		// so it lands in the hours bucket, not "tomorrow".
		{"tomorrow no time", "2024-01-11", "", "Due in 10h 0m"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Countdown(tc.date, tc.time, now); got != tc.want {
				t.Errorf("Countdown(%q, %q) = %q, want %q", tc.date, tc.time, got, tc.want)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		want bool
	}{
		{"no due date", "", "", false},
		{"yesterday any time", "2024-01-09", "23:59", true},
		{"earlier today", "2024-01-10", "09:00", true},
		{"later today", "2024-01-10", "18:00", false},
		{"today no time is past midnight", "2024-01-10", "", true},
		{"tomorrow", "2024-01-11", "", false},
		{"unparseable date", "not-a-date", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOverdue(tc.date, tc.time, now); got != tc.want {
				t.Errorf("IsOverdue(%q, %q) = %v, want %v", tc.date, tc.time, got, tc.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct{ in, want string }{
		{"00:15", "12:15 AM"},
		{"13:05", "1:05 PM"},
		{"12:00", "12:00 PM"},
		{"09:45", "9:45 AM"},
		{"23:59", "11:59 PM"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := FormatClock(tc.in); got != tc.want {
			t.Errorf("FormatClock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-01-05"); got != "Jan 5, 2024" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Errorf("FormatDate passthrough = %q", got)
	}
}
