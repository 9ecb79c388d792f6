package task

import (
	"context"

	"task-reminder/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// QuickAdd parses a free-form sentence and stores the resulting task.
	QuickAdd(ctx context.Context, input QuickAddInput) (QuickAddOutput, error)
	// Preview runs the quick-add parser without persisting anything.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)

	// Task CRUD
	Create(ctx context.Context, input CreateInput) (model.Task, error)
	Detail(ctx context.Context, id string) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id string) error
	ToggleDone(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Backup
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
}
