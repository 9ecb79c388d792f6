package datemath

import (
	"strings"
	"time"
)

// Priority is the urgency level extracted from a quick-add sentence.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PlaceholderTitle is used when every word of the input was consumed by a rule.
const PlaceholderTitle = "New Task"

// Valid reports whether p is one of the known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for sorting: high=0, medium=1, low=2.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// ParsePriority converts a user supplied string ("High", " low ") to a Priority.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}

// ParseResult holds the result of parsing a quick-add sentence.
// DueDate is nil when no date was recognised; otherwise it always carries
// a resolved time of day.
type ParseResult struct {
	Title    string
	DueDate  *time.Time
	Priority Priority
}

// HasDueDate reports whether a date was recognised.
func (r ParseResult) HasDueDate() bool {
	return r.DueDate != nil
}
