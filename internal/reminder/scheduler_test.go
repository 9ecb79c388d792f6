package reminder_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"task-reminder/internal/model"
	"task-reminder/internal/reminder"
	"task-reminder/internal/task/repository/file"
	pkgLog "task-reminder/pkg/log"
)

type mockRepo struct {
	mu       sync.Mutex
	tasks    []model.Task
	reminded map[string]bool
	listErr  error
}

func (r *mockRepo) ListDueForReminder(ctx context.Context, before time.Time) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var due []model.Task
	for _, t := range r.tasks {
		if t.Done || r.reminded[t.ID] || t.DueDate == nil || t.DueDate.After(before) {
			continue
		}
		due = append(due, t)
	}
	return due, nil
}

func (r *mockRepo) MarkReminded(ctx context.Context, id string, due time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminded[id] = true
	return nil
}

type mockNotifier struct {
	mu       sync.Mutex
	sent     []string
	failOn   string
	onNotify func(t model.Task)
}

func (n *mockNotifier) Notify(ctx context.Context, t model.Task) error {
	if n.onNotify != nil {
		n.onNotify(t)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if t.ID == n.failOn {
		return errors.New("chat unreachable")
	}
	n.sent = append(n.sent, t.ID)
	return nil
}

func (n *mockNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func TestScheduler_Tick(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time { v := now.Add(d); return &v }

	repo := &mockRepo{
		reminded: map[string]bool{},
		tasks: []model.Task{
			{ID: "past", Title: "overdue", DueDate: at(-48 * time.Hour)},
			{ID: "now", Title: "due now", DueDate: at(0)},
			{ID: "soon", Title: "in 4 minutes", DueDate: at(4 * time.Minute)},
			{ID: "later", Title: "tomorrow", DueDate: at(24 * time.Hour)},
			{ID: "done", Title: "finished", Done: true, DueDate: at(-time.Hour)},
			{ID: "undated", Title: "someday"},
		},
	}
	notifier := &mockNotifier{failOn: "now"}

	s, err := reminder.New(pkgLog.NewNop(), repo, notifier, reminder.Config{ScanInterval: time.Minute, Lookahead: 5 * time.Minute})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	sent, err := s.Tick(ctx, now)
	if err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
	if sent != 2 {
		t.Fatalf("sent = %d, want 2 (past and soon)", sent)
	}
	if repo.reminded["now"] {
		t.Error("a failed notification must not be marked")
	}

	// Second tick retries the failed one and does not repeat the others.
	notifier.failOn = ""
	sent, _ = s.Tick(ctx, now.Add(time.Minute))
	if sent != 1 {
		t.Errorf("retry sent = %d, want 1", sent)
	}
	if got := strings.Join(notifier.sent, ","); got != "past,soon,now" {
		t.Errorf("delivery order = %s", got)
	}

	repo.listErr = errors.New("disk error")
	if _, err := s.Tick(ctx, now); err == nil {
		t.Error("expected list error to be returned")
	}
}

func TestScheduler_Tick_DueDateMovedDuringSend(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Minute)
	moved := now.Add(48 * time.Hour)

	repo, err := file.New(ctx, filepath.Join(t.TempDir(), "tasks.yaml"), pkgLog.NewNop())
	if err != nil {
		t.Fatalf("file.New() error: %v", err)
	}
	if err := repo.Save(ctx, model.Task{ID: "a", Title: "call mom", DueDate: &due, CreatedAt: now}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	notifier := &mockNotifier{}
	notifier.onNotify = func(tk model.Task) {
		if tk.DueDate.Equal(due) {
			tk.DueDate = &moved
			tk.ReminderSent = false
			repo.Save(ctx, tk)
		}
	}
	s, _ := reminder.New(pkgLog.NewNop(), repo, notifier, reminder.Config{ScanInterval: time.Minute})

	if _, err := s.Tick(ctx, now); err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
	got, _ := repo.Get(ctx, "a")
	if got.ReminderSent {
		t.Fatal("reminder for the new due date must stay armed")
	}
	if !got.DueDate.Equal(moved) {
		t.Fatalf("due = %v, want %v", got.DueDate, moved)
	}

	sent, err := s.Tick(ctx, moved)
	if err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
	if sent != 1 {
		t.Errorf("sent at new due time = %d, want 1", sent)
	}
}

func TestScheduler_Run(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	repo := &mockRepo{
		reminded: map[string]bool{},
		tasks:    []model.Task{{ID: "a", Title: "x", DueDate: &past}},
	}
	notifier := &mockNotifier{}
	s, _ := reminder.New(pkgLog.NewNop(), repo, notifier, reminder.Config{ScanInterval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for notifier.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("reminder was not sent on startup")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
	if notifier.count() != 1 {
		t.Errorf("expected exactly one reminder, got %d", notifier.count())
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := reminder.New(pkgLog.NewNop(), nil, &mockNotifier{}, reminder.Config{}); err == nil {
		t.Error("expected error without repository")
	}
	if _, err := reminder.New(pkgLog.NewNop(), &mockRepo{}, nil, reminder.Config{}); err == nil {
		t.Error("expected error without notifier")
	}
}
