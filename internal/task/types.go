package task

import (
	"time"

	"task-reminder/internal/model"
	"task-reminder/pkg/datemath"
)

// Filter selects tasks by completion state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Valid reports whether f is one of the known filters. Empty means all.
func (f Filter) Valid() bool {
	switch f {
	case "", FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// --- UseCase Inputs ---

type QuickAddInput struct {
	Text string
}

type PreviewInput struct {
	Text string
}

type CreateInput struct {
	Title    string
	Notes    string
	DueDate  *time.Time
	Priority model.Priority // empty means medium
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	ID           string
	Title        *string
	Notes        *string
	DueDate      *time.Time
	ClearDueDate bool
	Priority     *model.Priority
	Done         *bool
}

type ListInput struct {
	Filter Filter
	Search string
}

type ExportInput struct {
	Format string // json, yaml or toml; empty means json
}

type ImportInput struct {
	Data   []byte
	Format string
}

// --- UseCase Outputs ---

type QuickAddOutput struct {
	Task         model.Task
	CalendarLink string // empty when the calendar mirror is off or failed
}

type PreviewOutput struct {
	Result datemath.ParseResult
}

type ListOutput struct {
	Tasks []model.Task
	Total int
}

type ExportOutput struct {
	Data        []byte
	Filename    string
	ContentType string
	Count       int
}

type ImportOutput struct {
	Count int
}
