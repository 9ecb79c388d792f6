package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"task-reminder/internal/model"
	"task-reminder/internal/task/repository"
	"task-reminder/pkg/datemath"
	"task-reminder/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errStore = errors.New("store unavailable")

// Mock repository backed by a map
type mockRepo struct {
	mu      sync.Mutex
	tasks   map[string]model.Task
	saveErr error
	saves   int
}

func newMockRepo(tasks ...model.Task) *mockRepo {
	r := &mockRepo{tasks: map[string]model.Task{}}
	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	return r
}

func (r *mockRepo) Save(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.tasks[t.ID] = t
	return nil
}

func (r *mockRepo) Get(ctx context.Context, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tasks[id], nil
}

func (r *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Task
	for _, t := range r.tasks {
		if opt.Done != nil && t.Done != *opt.Done {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mockRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

func (r *mockRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = map[string]model.Task{}
	return nil
}

func (r *mockRepo) ReplaceAll(ctx context.Context, tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	next := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		next[t.ID] = t
	}
	r.tasks = next
	return nil
}

func (r *mockRepo) Ping(ctx context.Context) error { return nil }

func (r *mockRepo) ListDueForReminder(ctx context.Context, before time.Time) ([]model.Task, error) {
	return nil, nil
}

func (r *mockRepo) MarkReminded(ctx context.Context, id string, due time.Time) error {
	return nil
}

// Mock calendar recording calls
type mockCalendar struct {
	created   []gcalendar.CreateEventRequest
	deleted   []string
	createErr error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.test/evt-1"}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return nil
}

// testNow is Wednesday 2024-05-01 15:30 UTC.
var testNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo *mockRepo, cal gcalendar.ICalendar) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(&mockLogger{}, repo, parser, cal, "primary").(*implUseCase)
	uc.now = func() time.Time { return testNow }
	seq := 0
	uc.newID = func() string {
		seq++
		return "id-" + string(rune('0'+seq))
	}
	return uc
}

func timePtr(t time.Time) *time.Time { return &t }
