package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"task-reminder/internal/backup"
	"task-reminder/internal/model"
	"task-reminder/internal/task"
)

func newTaskID() string {
	return uuid.NewString()
}

// getTask loads a task and maps the zero value to ErrTaskNotFound.
func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getTask Get: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// normalizePriority defaults empty to medium and rejects unknown values.
func normalizePriority(p model.Priority) (model.Priority, error) {
	if p == "" {
		return model.PriorityMedium, nil
	}
	if parsed, ok := model.ParsePriority(string(p)); ok {
		return parsed, nil
	}
	return "", task.ErrInvalidPriority
}

// matchesSearch is a case-insensitive substring match over title and notes.
func matchesSearch(t model.Task, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Notes), q)
}

// sortTasks orders open tasks first, then by due date with dated tasks
// ahead of undated ones, then by priority high to low, then by creation.
func sortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Done != b.Done {
			return !a.Done
		}
		switch {
		case a.DueDate != nil && b.DueDate != nil:
			if !a.DueDate.Equal(*b.DueDate) {
				return a.DueDate.Before(*b.DueDate)
			}
		case a.DueDate != nil:
			return true
		case b.DueDate != nil:
			return false
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

func mapBackupError(err error) error {
	switch {
	case errors.Is(err, backup.ErrUnsupportedFormat):
		return fmt.Errorf("%w: %v", task.ErrUnsupportedFormat, err)
	case errors.Is(err, backup.ErrInvalidData):
		return fmt.Errorf("%w: %v", task.ErrInvalidImport, err)
	}
	return err
}

func sameDue(a, b *model.Task) bool {
	if a.DueDate == nil || b.DueDate == nil {
		return a.DueDate == nil && b.DueDate == nil
	}
	return a.DueDate.Equal(*b.DueDate)
}
