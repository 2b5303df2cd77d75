package task

import (
	"reflect"
	"testing"
)

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Text: "Pay rent", DueDate: "2024-01-05", Priority: PriorityHigh},
		{ID: 2, Text: "Buy milk", Priority: PriorityLow, Completed: true},
		{ID: 3, Text: "Call dentist", DueDate: "2024-01-05", DueTime: "09:30", Priority: PriorityMedium},
		{ID: 4, Text: "Ship package", DueDate: "2024-01-06", Priority: PriorityMedium, Completed: true},
	}
}

func ids(tasks []Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterStatus(t *testing.T) {
	tasks := sampleTasks()

	tests := []struct {
		name   string
		status Status
		date   string
		want   []int64
	}{
		{"all", StatusAll, "", []int64{1, 2, 3, 4}},
		{"active", StatusActive, "", []int64{1, 3}},
		{"completed", StatusCompleted, "", []int64{2, 4}},
		{"all with date", StatusAll, "2024-01-05", []int64{1, 3}},
		{"active with date", StatusActive, "2024-01-06", nil},
		{"date excludes near miss", StatusAll, "2024-01-07", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(tasks, tc.status, tc.date))
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Filter(%s, %q) = %v, want %v", tc.status, tc.date, got, tc.want)
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	tasks := sampleTasks()
	got := Filter(tasks, StatusAll, "")
	if !reflect.DeepEqual(got, tasks) {
		t.Errorf("Filter(all) reordered or altered the snapshot")
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	tasks := sampleTasks()
	Filter(tasks, StatusActive, "2024-01-05")
	if !reflect.DeepEqual(tasks, sampleTasks()) {
		t.Errorf("Filter mutated its input")
	}
}

func TestCounts(t *testing.T) {
	active, total := Counts(sampleTasks())
	if active != 2 || total != 4 {
		t.Errorf("Counts = (%d, %d), want (2, 4)", active, total)
	}
}

func TestParseStatus(t *testing.T) {
	if got := ParseStatus("completed"); got != StatusCompleted {
		t.Errorf("ParseStatus(completed) = %v", got)
	}
	if got := ParseStatus("bogus"); got != StatusAll {
		t.Errorf("ParseStatus(bogus) = %v, want all", got)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{"low", PriorityLow, true},
		{" HIGH ", PriorityHigh, true},
		{"", PriorityMedium, true},
		{"urgent", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePriority(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePriority(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
