// Package reminder periodically scans the task store for due tasks and
// sends one reminder per task.
package reminder

import (
	"context"
	"errors"
	"time"

	"task-reminder/internal/task/repository"
	pkgLog "task-reminder/pkg/log"
)

const DefaultScanInterval = 30 * time.Second

// Config tunes the scan loop.
type Config struct {
	// ScanInterval is the time between two scans.
	ScanInterval time.Duration
	// Lookahead fires reminders this long before the due date.
	Lookahead time.Duration
}

// Scheduler replaces per-task timers with a periodic scan of the durable
// due-date index, so reminders survive restarts and have no delay limit.
type Scheduler struct {
	l        pkgLog.Logger
	repo     repository.ReminderRepository
	notifier Notifier
	cfg      Config
	now      func() time.Time
}

// New creates a Scheduler. A non-positive ScanInterval falls back to DefaultScanInterval.
func New(l pkgLog.Logger, repo repository.ReminderRepository, notifier Notifier, cfg Config) (*Scheduler, error) {
	if repo == nil {
		return nil, errors.New("reminder: repository is required")
	}
	if notifier == nil {
		return nil, errors.New("reminder: notifier is required")
	}
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = DefaultScanInterval
	}
	if cfg.Lookahead < 0 {
		cfg.Lookahead = 0
	}
	return &Scheduler{
		l:        l,
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
	}, nil
}

// Run scans once immediately, then on every tick until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.l.Infof(ctx, "reminder.Run: scanning every %s (lookahead %s)", s.cfg.ScanInterval, s.cfg.Lookahead)

	s.tickLogged(ctx)

	ticker := time.NewTicker(s.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Info(ctx, "reminder.Run: stopped")
			return ctx.Err()
		case <-ticker.C:
			s.tickLogged(ctx)
		}
	}
}

func (s *Scheduler) tickLogged(ctx context.Context) {
	if _, err := s.Tick(ctx, s.now()); err != nil {
		s.l.Errorf(ctx, "reminder.Tick: %v", err)
	}
}

// Tick sends reminders for every open task due at or before now+lookahead
// that has not been reminded yet, and returns how many were delivered.
// Past-due tasks fire on the first tick that sees them.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) (int, error) {
	due, err := s.repo.ListDueForReminder(ctx, now.Add(s.cfg.Lookahead))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, t := range due {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}
		if err := s.notifier.Notify(ctx, t); err != nil {
			s.l.Warnf(ctx, "reminder.Tick: notify %s failed, will retry: %v", t.ID, err)
			continue
		}
		if err := s.repo.MarkReminded(ctx, t.ID, *t.DueDate); err != nil {
			s.l.Errorf(ctx, "reminder.Tick: mark %s reminded: %v", t.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		s.l.Infof(ctx, "reminder.Tick: sent %d of %d due reminders", sent, len(due))
	}
	return sent, nil
}
