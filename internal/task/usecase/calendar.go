package usecase

import (
	"context"
	"time"

	"task-reminder/internal/model"
	"task-reminder/pkg/gcalendar"
)

const eventDuration = 30 * time.Minute

// mirrorToCalendar creates an event for a dated task and records its id.
// Failures are logged and never fail the caller.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, t *model.Task) string {
	if uc.calendar == nil || t.DueDate == nil || t.Done {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Notes,
		StartTime:   *t.DueDate,
		EndTime:     t.DueDate.Add(eventDuration),
		Timezone:    uc.dateMath.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirrorToCalendar: event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	t.CalendarEventID = event.ID
	if err := uc.repo.Save(ctx, *t); err != nil {
		uc.l.Warnf(ctx, "uc.mirrorToCalendar: failed to store event id for %s: %v", t.ID, err)
	}
	return event.HtmlLink
}

// unmirror removes the task's calendar event, if any.
func (uc *implUseCase) unmirror(ctx context.Context, t *model.Task) {
	if uc.calendar == nil || t.CalendarEventID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "uc.unmirror: event deletion failed for %s (non-fatal): %v", t.ID, err)
		return
	}
	t.CalendarEventID = ""
}
