package usecase

import (
	"time"

	"task-reminder/internal/task"
	"task-reminder/internal/task/repository"
	"task-reminder/pkg/datemath"
	"task-reminder/pkg/gcalendar"
	pkgLog "task-reminder/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	dateMath   *datemath.Parser
	calendar   gcalendar.ICalendar
	calendarID string
	now        func() time.Time
	newID      func() string
}

// New creates a new task UseCase instance. calendar may be nil, which turns
// the Google Calendar mirror off.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	calendar gcalendar.ICalendar,
	calendarID string,
) task.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		dateMath:   dateMath,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
		newID:      newTaskID,
	}
}
