package usecase

import (
	"context"

	"task-reminder/internal/task"
	"task-reminder/internal/task/repository"
)

// List filters, searches and sorts tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if !input.Filter.Valid() {
		return task.ListOutput{}, task.ErrInvalidFilter
	}

	var opt repository.ListOptions
	switch input.Filter {
	case task.FilterActive:
		done := false
		opt.Done = &done
	case task.FilterCompleted:
		done := true
		opt.Done = &done
	}

	all, err := uc.repo.List(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return task.ListOutput{}, err
	}

	tasks := all[:0]
	for _, t := range all {
		if matchesSearch(t, input.Search) {
			tasks = append(tasks, t)
		}
	}
	sortTasks(tasks)

	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}
