package model

import (
	"time"

	"task-reminder/pkg/datemath"
)

// Priority is the urgency of a task. It shares its values with the
// quick-add parser so parsed results can be stored as-is.
type Priority = datemath.Priority

const (
	PriorityLow    = datemath.PriorityLow
	PriorityMedium = datemath.PriorityMedium
	PriorityHigh   = datemath.PriorityHigh
)

// Task is a single to-do item owned by the local store.
type Task struct {
	ID              string     `json:"id" yaml:"id" toml:"id"`
	Title           string     `json:"title" yaml:"title" toml:"title"`
	Notes           string     `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
	DueDate         *time.Time `json:"dueDate,omitempty" yaml:"due_date,omitempty" toml:"due_date,omitempty"`
	Done            bool       `json:"done" yaml:"done" toml:"done"`
	Priority        Priority   `json:"priority" yaml:"priority" toml:"priority"`
	CreatedAt       time.Time  `json:"createdAt" yaml:"created_at" toml:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt,omitzero" yaml:"updated_at,omitempty" toml:"updated_at,omitempty"`
	ReminderSent    bool       `json:"reminderSent,omitempty" yaml:"reminder_sent,omitempty" toml:"reminder_sent,omitempty"`
	CalendarEventID string     `json:"calendarEventId,omitempty" yaml:"calendar_event_id,omitempty" toml:"calendar_event_id,omitempty"`
}

// HasDueDate reports whether the task is scheduled.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// IsOverdue reports whether an open task's due date is before now.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Done && t.DueDate != nil && t.DueDate.Before(now)
}

// ParsePriority accepts low, medium or high in any case.
func ParsePriority(s string) (Priority, bool) {
	return datemath.ParsePriority(s)
}
