package task_test

import (
	"testing"
	"time"

	"task-reminder/internal/model"
	"task-reminder/internal/task"
)

func TestSections(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)
	ptr := func(t time.Time) *time.Time { return &t }

	tasks := []model.Task{
		{ID: "overdue", DueDate: ptr(start.Add(-time.Hour))},
		{ID: "today", DueDate: ptr(start.Add(9 * time.Hour))},
		{ID: "upcoming", DueDate: ptr(end.Add(time.Hour))},
		{ID: "undated"},
		{ID: "done", Done: true, DueDate: ptr(start.Add(-time.Hour))},
	}

	got := task.Sections(tasks, start, end)
	want := []string{task.SectionOverdue, task.SectionToday, task.SectionUpcoming, task.SectionNoDueDate, task.SectionCompleted}
	if len(got) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s.Name != want[i] {
			t.Errorf("section %d = %q, want %q", i, s.Name, want[i])
		}
		if len(s.Tasks) != 1 {
			t.Errorf("section %q has %d tasks, want 1", s.Name, len(s.Tasks))
		}
	}

	if got := task.Sections(nil, start, end); len(got) != 0 {
		t.Errorf("expected no sections for empty input, got %d", len(got))
	}
}
