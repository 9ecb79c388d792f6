package repository

import (
	"context"
	"time"

	"task-reminder/internal/model"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
	ReminderRepository
}

// TaskRepository is a key-value store of tasks keyed by id.
// Get returns a zero Task and no error when the id is unknown.
type TaskRepository interface {
	Save(ctx context.Context, t model.Task) error
	Get(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	// ReplaceAll swaps the whole store for tasks in a single write. On error
	// the previous contents are kept.
	ReplaceAll(ctx context.Context, tasks []model.Task) error
	// Ping reports whether the backing storage can be written.
	Ping(ctx context.Context) error
}

// ReminderRepository is the due-date index used by the reminder scheduler.
type ReminderRepository interface {
	// ListDueForReminder returns open, not yet reminded tasks due at or before the given instant.
	ListDueForReminder(ctx context.Context, before time.Time) ([]model.Task, error)
	// MarkReminded flags the task as reminded for the given due date. It is a
	// no-op when the stored due date has moved since the task was listed.
	MarkReminded(ctx context.Context, id string, due time.Time) error
}
