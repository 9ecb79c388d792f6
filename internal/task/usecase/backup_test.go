package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"task-reminder/internal/model"
	"task-reminder/internal/task"
	"task-reminder/internal/task/repository"
)

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(
		model.Task{ID: "a", Title: "one", Priority: model.PriorityHigh, CreatedAt: testNow},
		model.Task{ID: "b", Title: "two", Done: true, Priority: model.PriorityLow, CreatedAt: testNow},
	)
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.Export(ctx, task.ExportInput{Format: "yaml"})
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if out.Filename != "tasks-backup-2024-05-01.yaml" || out.ContentType != "application/yaml" || out.Count != 2 {
		t.Errorf("unexpected export meta: %+v", out)
	}

	repo.Save(ctx, model.Task{ID: "c", Title: "extra"})

	res, err := uc.Import(ctx, task.ImportInput{Data: out.Data, Format: "yaml"})
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if res.Count != 2 {
		t.Errorf("imported %d, want 2", res.Count)
	}
	if got, _ := repo.Get(ctx, "c"); got.ID != "" {
		t.Error("import must replace existing tasks")
	}
}

func TestImport_Errors(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(model.Task{ID: "keep", Title: "keep"})
	uc := newTestUseCase(t, repo, nil)

	_, err := uc.Import(ctx, task.ImportInput{Data: []byte(`[{"id":"x","done":false}]`)})
	if !errors.Is(err, task.ErrInvalidImport) {
		t.Fatalf("expected ErrInvalidImport, got %v", err)
	}
	if !strings.Contains(err.Error(), "title") {
		t.Errorf("expected the reason in the message, got %v", err)
	}
	if got, _ := repo.Get(ctx, "keep"); got.ID == "" {
		t.Error("a rejected import must not touch the store")
	}

	if _, err := uc.Import(ctx, task.ImportInput{Data: []byte(`[]`), Format: "xml"}); !errors.Is(err, task.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := uc.Export(ctx, task.ExportInput{Format: "xml"}); !errors.Is(err, task.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestImport_StoreFailureKeepsTasks(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(
		model.Task{ID: "old1", Title: "first", CreatedAt: testNow},
		model.Task{ID: "old2", Title: "second", CreatedAt: testNow},
	)
	uc := newTestUseCase(t, repo, nil)
	repo.saveErr = errStore

	data := []byte(`[{"id":"n1","title":"a","done":false},{"id":"n2","title":"b","done":false},{"id":"n3","title":"c","done":false}]`)
	if _, err := uc.Import(ctx, task.ImportInput{Data: data, Format: "json"}); !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}

	repo.saveErr = nil
	all, _ := repo.List(ctx, repository.ListOptions{})
	if len(all) != 2 || all[0].ID != "old1" || all[1].ID != "old2" {
		t.Errorf("failed import must keep the original tasks, got %+v", all)
	}
}
