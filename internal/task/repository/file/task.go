package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"task-reminder/internal/model"
	"task-reminder/internal/task/repository"
)

func (r *implRepository) Save(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, existed := r.tasks[t.ID]
	r.tasks[t.ID] = t
	if err := r.flush(ctx); err != nil {
		if existed {
			r.tasks[t.ID] = prev
		} else {
			delete(r.tasks, t.ID)
		}
		return err
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tasks[id], nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.Done != nil && t.Done != *opt.Done {
			continue
		}
		tasks = append(tasks, t)
	}
	sortByCreation(tasks)
	return tasks, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.tasks[id]
	if !ok {
		return nil
	}
	delete(r.tasks, id)
	if err := r.flush(ctx); err != nil {
		r.tasks[id] = prev
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.tasks
	r.tasks = make(map[string]model.Task)
	if err := r.flush(ctx); err != nil {
		r.tasks = prev
		return err
	}
	return nil
}

func (r *implRepository) ReplaceAll(ctx context.Context, tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		next[t.ID] = t
	}

	prev := r.tasks
	r.tasks = next
	if err := r.flush(ctx); err != nil {
		r.tasks = prev
		return err
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	f, err := os.CreateTemp(dir, ".ping-*")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	f.Close()
	return os.Remove(f.Name())
}

func (r *implRepository) ListDueForReminder(ctx context.Context, before time.Time) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []model.Task
	for _, t := range r.tasks {
		if t.Done || t.ReminderSent || t.DueDate == nil {
			continue
		}
		if !t.DueDate.After(before) {
			due = append(due, t)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].DueDate.Before(*due[j].DueDate) })
	return due, nil
}

func (r *implRepository) MarkReminded(ctx context.Context, id string, due time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.ReminderSent || t.Done || t.DueDate == nil || !t.DueDate.Equal(due) {
		return nil
	}
	t.ReminderSent = true
	r.tasks[id] = t
	if err := r.flush(ctx); err != nil {
		t.ReminderSent = false
		r.tasks[id] = t
		return err
	}
	return nil
}

// flush writes the whole store to a temp file and renames it over the
// target. Callers must hold the write lock.
func (r *implRepository) flush(ctx context.Context) error {
	tasks := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, t)
	}
	sortByCreation(tasks)

	data, err := yaml.Marshal(document{Version: storeVersion, Tasks: tasks})
	if err != nil {
		r.l.Errorf(ctx, "task/repository/file.flush: encode: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.l.Errorf(ctx, "task/repository/file.flush: mkdir %s: %v", dir, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.yaml")
	if err != nil {
		r.l.Errorf(ctx, "task/repository/file.flush: create temp: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		r.l.Errorf(ctx, "task/repository/file.flush: write: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		r.l.Errorf(ctx, "task/repository/file.flush: rename: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}

func sortByCreation(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
}
