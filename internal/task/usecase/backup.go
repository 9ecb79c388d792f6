package usecase

import (
	"context"

	"task-reminder/internal/backup"
	"task-reminder/internal/task"
	"task-reminder/internal/task/repository"
)

// Export serialises every task in the requested format.
func (uc *implUseCase) Export(ctx context.Context, input task.ExportInput) (task.ExportOutput, error) {
	format, err := backup.ParseFormat(input.Format)
	if err != nil {
		return task.ExportOutput{}, mapBackupError(err)
	}

	tasks, err := uc.repo.List(ctx, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export List: %v", err)
		return task.ExportOutput{}, err
	}

	data, err := backup.Encode(tasks, format)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export Encode: %v", err)
		return task.ExportOutput{}, err
	}

	return task.ExportOutput{
		Data:        data,
		Filename:    backup.Filename(format, uc.now().In(uc.dateMath.Location())),
		ContentType: format.ContentType(),
		Count:       len(tasks),
	}, nil
}

// Import replaces every stored task with the decoded backup.
func (uc *implUseCase) Import(ctx context.Context, input task.ImportInput) (task.ImportOutput, error) {
	format, err := backup.ParseFormat(input.Format)
	if err != nil {
		return task.ImportOutput{}, mapBackupError(err)
	}

	tasks, err := backup.Decode(input.Data, format)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Import Decode: %v", err)
		return task.ImportOutput{}, mapBackupError(err)
	}

	for i := range tasks {
		if tasks[i].CreatedAt.IsZero() {
			tasks[i].CreatedAt = uc.now()
		}
	}
	if err := uc.repo.ReplaceAll(ctx, tasks); err != nil {
		uc.l.Errorf(ctx, "uc.Import ReplaceAll: %v", err)
		return task.ImportOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Import: replaced store with %d tasks", len(tasks))
	return task.ImportOutput{Count: len(tasks)}, nil
}
