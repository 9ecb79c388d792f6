package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-reminder/internal/model"
	"task-reminder/internal/task"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    task.CreateInput
		wantErr  error
		title    string
		priority model.Priority
	}{
		{name: "Defaults priority", input: task.CreateInput{Title: "  write   report "}, title: "write report", priority: model.PriorityMedium},
		{name: "Explicit priority", input: task.CreateInput{Title: "ship", Priority: "High"}, title: "ship", priority: model.PriorityHigh},
		{name: "Empty title", input: task.CreateInput{Title: " at "}, wantErr: task.ErrEmptyTitle},
		{name: "Bad priority", input: task.CreateInput{Title: "x", Priority: "urgent"}, wantErr: task.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, newMockRepo(), nil)
			got, err := uc.Create(ctx, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != tt.title || got.Priority != tt.priority {
				t.Errorf("got %+v", got)
			}
		})
	}
}

func TestDetailAndDelete(t *testing.T) {
	ctx := context.Background()
	cal := &mockCalendar{}
	repo := newMockRepo(model.Task{ID: "a", Title: "one", CalendarEventID: "evt-a"})
	uc := newTestUseCase(t, repo, cal)

	if _, err := uc.Detail(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	got, err := uc.Detail(ctx, "a")
	if err != nil || got.Title != "one" {
		t.Fatalf("Detail() = %+v, %v", got, err)
	}

	if err := uc.Delete(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if len(cal.deleted) != 1 || cal.deleted[0] != "evt-a" {
		t.Errorf("expected calendar event removal, got %v", cal.deleted)
	}
	if _, err := uc.Detail(ctx, "a"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected task gone, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	seed := func() *mockRepo {
		return newMockRepo(model.Task{
			ID:           "a",
			Title:        "old",
			Notes:        "keep me",
			DueDate:      timePtr(due),
			Priority:     model.PriorityLow,
			ReminderSent: true,
			CreatedAt:    testNow.Add(-time.Hour),
		})
	}
	str := func(s string) *string { return &s }

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		uc := newTestUseCase(t, seed(), nil)
		high := model.PriorityHigh
		got, err := uc.Update(ctx, task.UpdateInput{ID: "a", Title: str(" new  title at"), Priority: &high})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "new title" || got.Notes != "keep me" || got.Priority != model.PriorityHigh {
			t.Errorf("unexpected task: %+v", got)
		}
		if !got.ReminderSent {
			t.Error("reminder flag should survive when the due date is unchanged")
		}
		if !got.UpdatedAt.Equal(testNow) {
			t.Errorf("updatedAt = %v", got.UpdatedAt)
		}
	})

	t.Run("Moving the due date re-arms the reminder", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, seed(), cal)
		later := due.Add(24 * time.Hour)
		got, err := uc.Update(ctx, task.UpdateInput{ID: "a", DueDate: &later})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ReminderSent {
			t.Error("expected reminder flag to be cleared")
		}
		if !got.DueDate.Equal(later) {
			t.Errorf("due = %v, want %v", got.DueDate, later)
		}
		if len(cal.created) != 1 {
			t.Errorf("expected calendar event to be re-created, got %d", len(cal.created))
		}
	})

	t.Run("Clear due date", func(t *testing.T) {
		uc := newTestUseCase(t, seed(), nil)
		got, err := uc.Update(ctx, task.UpdateInput{ID: "a", ClearDueDate: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DueDate != nil || got.ReminderSent {
			t.Errorf("unexpected task: %+v", got)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		uc := newTestUseCase(t, seed(), nil)
		if _, err := uc.Update(ctx, task.UpdateInput{ID: "nope"}); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
		if _, err := uc.Update(ctx, task.UpdateInput{ID: "a", Title: str("  ")}); !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
		bad := model.Priority("urgent")
		if _, err := uc.Update(ctx, task.UpdateInput{ID: "a", Priority: &bad}); !errors.Is(err, task.ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})
}

func TestToggleDone(t *testing.T) {
	ctx := context.Background()
	future := testNow.Add(time.Hour)
	repo := newMockRepo(model.Task{ID: "a", Title: "x", DueDate: &future, ReminderSent: true})
	uc := newTestUseCase(t, repo, nil)

	got, err := uc.ToggleDone(ctx, "a")
	if err != nil || !got.Done {
		t.Fatalf("ToggleDone() = %+v, %v", got, err)
	}

	got, err = uc.ToggleDone(ctx, "a")
	if err != nil || got.Done {
		t.Fatalf("ToggleDone() = %+v, %v", got, err)
	}
	if got.ReminderSent {
		t.Error("re-opening a task due in the future should re-arm the reminder")
	}

	if _, err := uc.ToggleDone(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestToggleDone_RemovesCalendarEvent(t *testing.T) {
	ctx := context.Background()
	future := testNow.Add(time.Hour)
	repo := newMockRepo(model.Task{ID: "a", Title: "x", DueDate: &future, CalendarEventID: "evt-9"})
	cal := &mockCalendar{}
	uc := newTestUseCase(t, repo, cal)

	got, err := uc.ToggleDone(ctx, "a")
	if err != nil {
		t.Fatalf("ToggleDone() error: %v", err)
	}
	if len(cal.deleted) != 1 || cal.deleted[0] != "evt-9" {
		t.Errorf("expected event evt-9 to be deleted, got %v", cal.deleted)
	}
	if got.CalendarEventID != "" {
		t.Errorf("event id should be cleared, got %q", got.CalendarEventID)
	}
	if stored, _ := repo.Get(ctx, "a"); stored.CalendarEventID != "" {
		t.Errorf("stored event id should be cleared, got %q", stored.CalendarEventID)
	}
}
