package usecase

import (
	"context"
	"strings"

	"task-reminder/internal/model"
	"task-reminder/internal/task"
)

// QuickAdd parses a free-form sentence into a task and stores it.
func (uc *implUseCase) QuickAdd(ctx context.Context, input task.QuickAddInput) (task.QuickAddOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.QuickAddOutput{}, task.ErrEmptyInput
	}

	// One reference instant for parsing and for the createdAt stamp.
	now := uc.now()
	parsed := uc.dateMath.Parse(input.Text, now)

	t := model.Task{
		ID:        uc.newID(),
		Title:     parsed.Title,
		DueDate:   parsed.DueDate,
		Priority:  parsed.Priority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.Save(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.QuickAdd Save: %v", err)
		return task.QuickAddOutput{}, err
	}
	uc.l.Infof(ctx, "uc.QuickAdd: created task id=%s title=%q due=%v priority=%s", t.ID, t.Title, parsed.HasDueDate(), t.Priority)

	link := uc.mirrorToCalendar(ctx, &t)
	return task.QuickAddOutput{Task: t, CalendarLink: link}, nil
}

// Preview parses text without storing anything.
func (uc *implUseCase) Preview(ctx context.Context, input task.PreviewInput) (task.PreviewOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.PreviewOutput{}, task.ErrEmptyInput
	}
	return task.PreviewOutput{Result: uc.dateMath.Parse(input.Text, uc.now())}, nil
}
