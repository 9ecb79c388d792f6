package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-reminder/internal/model"
	"task-reminder/internal/task"
)

func TestQuickAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty input", func(t *testing.T) {
		uc := newTestUseCase(t, newMockRepo(), nil)
		_, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "   "})
		if !errors.Is(err, task.ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Parses and persists", func(t *testing.T) {
		repo := newMockRepo()
		uc := newTestUseCase(t, repo, nil)

		out, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "high priority remind me tomorrow at 9am buy milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := out.Task
		if got.ID == "" || got.Title != "buy milk" || got.Priority != model.PriorityHigh || got.Done {
			t.Errorf("unexpected task: %+v", got)
		}
		want := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
		if got.DueDate == nil || !got.DueDate.Equal(want) {
			t.Errorf("due = %v, want %v", got.DueDate, want)
		}
		if !got.CreatedAt.Equal(testNow) {
			t.Errorf("createdAt = %v, want %v", got.CreatedAt, testNow)
		}
		if stored, _ := repo.Get(ctx, got.ID); stored.Title != "buy milk" {
			t.Errorf("task was not persisted: %+v", stored)
		}
		if out.CalendarLink != "" {
			t.Errorf("expected no calendar link without a calendar, got %q", out.CalendarLink)
		}
	})

	t.Run("Mirrors dated tasks to calendar", func(t *testing.T) {
		repo := newMockRepo()
		cal := &mockCalendar{}
		uc := newTestUseCase(t, repo, cal)

		out, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "dentist friday 3pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.created) != 1 {
			t.Fatalf("expected 1 calendar event, got %d", len(cal.created))
		}
		if cal.created[0].Summary != "dentist" || cal.created[0].CalendarID != "primary" {
			t.Errorf("unexpected event request: %+v", cal.created[0])
		}
		if out.CalendarLink != "https://calendar.test/evt-1" {
			t.Errorf("unexpected link: %q", out.CalendarLink)
		}
		if stored, _ := repo.Get(ctx, out.Task.ID); stored.CalendarEventID != "evt-1" {
			t.Errorf("event id not stored: %+v", stored)
		}
	})

	t.Run("Calendar failure is not fatal", func(t *testing.T) {
		cal := &mockCalendar{createErr: errors.New("quota")}
		uc := newTestUseCase(t, newMockRepo(), cal)

		out, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "pay rent in 3 days"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.CalendarEventID != "" || out.CalendarLink != "" {
			t.Errorf("expected no event on failure: %+v", out)
		}
	})

	t.Run("Undated tasks are not mirrored", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, newMockRepo(), cal)

		if _, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "buy milk"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.created) != 0 {
			t.Errorf("expected no calendar events, got %d", len(cal.created))
		}
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := newMockRepo()
		repo.saveErr = errStore
		uc := newTestUseCase(t, repo, nil)

		_, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "buy milk"})
		if !errors.Is(err, errStore) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestPreview(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.Preview(context.Background(), task.PreviewInput{Text: "in 2 hours call mom"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.Title != "call mom" {
		t.Errorf("title = %q", out.Result.Title)
	}
	if want := testNow.Add(2 * time.Hour); out.Result.DueDate == nil || !out.Result.DueDate.Equal(want) {
		t.Errorf("due = %v, want %v", out.Result.DueDate, want)
	}
	if repo.saves != 0 {
		t.Errorf("Preview must not persist, got %d saves", repo.saves)
	}

	if _, err := uc.Preview(context.Background(), task.PreviewInput{}); !errors.Is(err, task.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}
