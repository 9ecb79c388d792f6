package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"task-reminder/internal/model"
	"task-reminder/internal/task/repository"
	"task-reminder/internal/task/repository/file"
	pkgLog "task-reminder/pkg/log"
)

func newRepo(t *testing.T) (repository.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "tasks.yaml")
	repo, err := file.New(context.Background(), path, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return repo, path
}

func TestFileRepository(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("ICT", 7*3600)
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, loc)
	due := time.Date(2024, 5, 2, 9, 0, 0, 0, loc)

	repo, path := newRepo(t)

	t.Run("Get unknown returns zero value", func(t *testing.T) {
		got, err := repo.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Errorf("expected zero task, got %+v", got)
		}
	})

	t.Run("Save and reload from disk", func(t *testing.T) {
		task := model.Task{
			ID:        "a",
			Title:     "buy milk",
			Notes:     "2 litres",
			DueDate:   &due,
			Priority:  model.PriorityHigh,
			CreatedAt: created,
		}
		if err := repo.Save(ctx, task); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected store file: %v", err)
		}

		reopened, err := file.New(ctx, path, pkgLog.NewNop())
		if err != nil {
			t.Fatalf("reopen error: %v", err)
		}
		got, _ := reopened.Get(ctx, "a")
		if got.Title != "buy milk" || got.Notes != "2 litres" || got.Priority != model.PriorityHigh {
			t.Errorf("unexpected task after reload: %+v", got)
		}
		if got.DueDate == nil || !got.DueDate.Equal(due) {
			t.Errorf("due date = %v, want %v", got.DueDate, due)
		}
		if !got.CreatedAt.Equal(created) {
			t.Errorf("createdAt = %v, want %v", got.CreatedAt, created)
		}
	})

	t.Run("List filters by done", func(t *testing.T) {
		repo.Save(ctx, model.Task{ID: "b", Title: "done one", Done: true, CreatedAt: created.Add(time.Minute)})

		all, _ := repo.List(ctx, repository.ListOptions{})
		if len(all) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(all))
		}
		if all[0].ID != "a" {
			t.Errorf("expected creation order, got %s first", all[0].ID)
		}

		done := true
		completed, _ := repo.List(ctx, repository.ListOptions{Done: &done})
		if len(completed) != 1 || completed[0].ID != "b" {
			t.Errorf("unexpected completed list: %+v", completed)
		}
	})

	t.Run("Reminder index", func(t *testing.T) {
		later := due.Add(48 * time.Hour)
		repo.Save(ctx, model.Task{ID: "c", Title: "later", DueDate: &later, CreatedAt: created})

		got, _ := repo.ListDueForReminder(ctx, due)
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("expected only task a due, got %+v", got)
		}

		if err := repo.MarkReminded(ctx, "c", due); err != nil {
			t.Fatalf("MarkReminded() with a stale due date error: %v", err)
		}
		if got, _ := repo.Get(ctx, "c"); got.ReminderSent {
			t.Error("a stale due date must not mark the task")
		}

		if err := repo.MarkReminded(ctx, "a", due); err != nil {
			t.Fatalf("MarkReminded() error: %v", err)
		}
		got, _ = repo.ListDueForReminder(ctx, due)
		if len(got) != 0 {
			t.Errorf("expected reminded task to be skipped, got %+v", got)
		}

		if err := repo.MarkReminded(ctx, "missing", due); err != nil {
			t.Errorf("MarkReminded(missing) should be a no-op, got %v", err)
		}
	})

	t.Run("Delete and Clear", func(t *testing.T) {
		if err := repo.Delete(ctx, "a"); err != nil {
			t.Fatalf("Delete() error: %v", err)
		}
		if got, _ := repo.Get(ctx, "a"); got.ID != "" {
			t.Errorf("expected a to be deleted")
		}
		if err := repo.Delete(ctx, "a"); err != nil {
			t.Errorf("deleting twice should not fail: %v", err)
		}

		if err := repo.Clear(ctx); err != nil {
			t.Fatalf("Clear() error: %v", err)
		}
		all, _ := repo.List(ctx, repository.ListOptions{})
		if len(all) != 0 {
			t.Errorf("expected empty store, got %d", len(all))
		}
	})
}

func TestPing(t *testing.T) {
	repo, path := newRepo(t)
	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 0 {
		t.Errorf("Ping() must not leave files behind, found %d", len(entries))
	}
}

func TestReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	repo.Save(ctx, model.Task{ID: "old", Title: "old", CreatedAt: created})

	err := repo.ReplaceAll(ctx, []model.Task{
		{ID: "n1", Title: "first", CreatedAt: created},
		{ID: "n2", Title: "second", CreatedAt: created.Add(time.Minute)},
	})
	if err != nil {
		t.Fatalf("ReplaceAll() error: %v", err)
	}

	reopened, err := file.New(ctx, path, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	all, _ := reopened.List(ctx, repository.ListOptions{})
	if len(all) != 2 || all[0].ID != "n1" || all[1].ID != "n2" {
		t.Fatalf("unexpected tasks after replace: %+v", all)
	}

	// A store whose directory cannot be written keeps its previous contents.
	dir := filepath.Dir(path)
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Skipf("chmod: %v", err)
	}
	defer os.Chmod(dir, 0o755)
	if f, err := os.CreateTemp(dir, "writable-*"); err == nil {
		f.Close()
		os.Remove(f.Name())
		t.Skip("directory is still writable (running as root)")
	}

	if err := repo.ReplaceAll(ctx, []model.Task{{ID: "x", Title: "x"}}); err == nil {
		t.Fatal("expected ReplaceAll() to fail on a read-only directory")
	}
	all, _ = repo.List(ctx, repository.ListOptions{})
	if len(all) != 2 || all[0].ID != "n1" {
		t.Errorf("failed replace must keep previous tasks, got %+v", all)
	}
}

func TestNew_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	os.WriteFile(path, []byte("tasks: [this is: not: valid"), 0o644)

	if _, err := file.New(context.Background(), path, pkgLog.NewNop()); err == nil {
		t.Fatal("expected error for corrupt store")
	}
	if _, err := file.New(context.Background(), "", pkgLog.NewNop()); err == nil {
		t.Fatal("expected error for empty path")
	}
}
