package usecase

import (
	"context"

	"task-reminder/internal/model"
	"task-reminder/internal/task"
	"task-reminder/pkg/datemath"
)

// Create stores a task built from explicit fields.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	title := datemath.CleanTitle(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}
	priority, err := normalizePriority(input.Priority)
	if err != nil {
		return model.Task{}, err
	}

	now := uc.now()
	t := model.Task{
		ID:        uc.newID(),
		Title:     title,
		Notes:     input.Notes,
		DueDate:   input.DueDate,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Save(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Create Save: %v", err)
		return model.Task{}, err
	}

	uc.mirrorToCalendar(ctx, &t)
	return t, nil
}

// Detail returns a single task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	return uc.getTask(ctx, id)
}

// Update applies a partial update. Moving the due date re-arms the reminder
// and re-creates the calendar event.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	existing, err := uc.getTask(ctx, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	updated := existing
	if input.Title != nil {
		updated.Title = datemath.CleanTitle(*input.Title)
		if updated.Title == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
	}
	if input.Notes != nil {
		updated.Notes = *input.Notes
	}
	if input.Priority != nil {
		p, err := normalizePriority(*input.Priority)
		if err != nil {
			return model.Task{}, err
		}
		updated.Priority = p
	}
	switch {
	case input.ClearDueDate:
		updated.DueDate = nil
	case input.DueDate != nil:
		due := *input.DueDate
		updated.DueDate = &due
	}
	if input.Done != nil {
		updated.Done = *input.Done
	}

	dueMoved := !sameDue(&existing, &updated)
	if dueMoved {
		updated.ReminderSent = false
	}
	updated.UpdatedAt = uc.now()

	if dueMoved || (updated.Done && !existing.Done) {
		uc.unmirror(ctx, &updated)
	}

	if err := uc.repo.Save(ctx, updated); err != nil {
		uc.l.Errorf(ctx, "uc.Update Save: %v", err)
		return model.Task{}, err
	}

	if dueMoved {
		uc.mirrorToCalendar(ctx, &updated)
	}
	return updated, nil
}

// Delete removes a task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.getTask(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete Delete: %v", err)
		return err
	}
	uc.unmirror(ctx, &existing)
	return nil
}

// ToggleDone flips the completion flag. Re-opening a task whose due date is
// still ahead re-arms its reminder.
func (uc *implUseCase) ToggleDone(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	now := uc.now()
	t.Done = !t.Done
	t.UpdatedAt = now
	if !t.Done && t.DueDate != nil && t.DueDate.After(now) {
		t.ReminderSent = false
	}
	if t.Done {
		uc.unmirror(ctx, &t)
	}

	if err := uc.repo.Save(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleDone Save: %v", err)
		return model.Task{}, err
	}
	return t, nil
}
