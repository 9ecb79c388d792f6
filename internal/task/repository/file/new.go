package file

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"task-reminder/internal/model"
	"task-reminder/internal/task/repository"
	pkgLog "task-reminder/pkg/log"
)

const storeVersion = 1

// document is the on-disk layout of the store.
type document struct {
	Version int          `yaml:"version"`
	Tasks   []model.Task `yaml:"tasks"`
}

type implRepository struct {
	mu    sync.RWMutex
	path  string
	tasks map[string]model.Task
	l     pkgLog.Logger
}

// New opens the YAML task store at path, creating it on first write.
func New(ctx context.Context, path string, l pkgLog.Logger) (repository.Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("task/repository/file: path is required")
	}
	r := &implRepository{
		path:  path,
		tasks: make(map[string]model.Task),
		l:     l,
	}
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *implRepository) load(ctx context.Context) error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.l.Infof(ctx, "task/repository/file.load: %s does not exist yet, starting empty", r.path)
			return nil
		}
		r.l.Errorf(ctx, "task/repository/file.load: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		r.l.Errorf(ctx, "task/repository/file.load: decode %s: %v", r.path, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	for _, t := range doc.Tasks {
		if t.ID == "" {
			continue
		}
		r.tasks[t.ID] = t
	}
	r.l.Debugf(ctx, "task/repository/file.load: loaded %d tasks", len(r.tasks))
	return nil
}
