package datemath

import (
	"fmt"
	"time"
	_ "time/tzdata" // zones must resolve in minimal containers
)

// DefaultHour is the time of day given to day-granular dates ("tomorrow",
// "friday", "in 3 days") when the sentence carries no explicit time.
const DefaultHour = 9

// Parser turns free-form quick-add sentences into a title, an optional
// absolute due date and a priority.
type Parser struct {
	location    *time.Location
	defaultHour int
}

// Option customises a Parser.
type Option func(*Parser)

// WithDefaultHour overrides the 09:00 fallback time. Values outside 0-23 are ignored.
func WithDefaultHour(hour int) Option {
	return func(p *Parser) {
		if hour >= 0 && hour <= 23 {
			p.defaultHour = hour
		}
	}
}

// NewParser creates a new parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return NewParserInLocation(loc, opts...), nil
}

// NewParserInLocation creates a parser bound to an already loaded location.
func NewParserInLocation(loc *time.Location, opts ...Option) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	p := &Parser{location: loc, defaultHour: DefaultHour}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location returns the zone all due dates are resolved in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse extracts title, due date and priority from text.
//
// now is the single reference instant for every relative computation; it is
// never re-read from the wall clock. Parse never fails: input without any
// recognised keyword comes back as a cleaned title, no due date and medium
// priority.
func (p *Parser) Parse(text string, now time.Time) ParseResult {
	st := &parseState{
		input:    text,
		now:      now.In(p.location),
		priority: PriorityMedium,
	}

	for _, r := range rules {
		r.apply(p, st)
	}

	title := st.title()
	if title == "" {
		title = PlaceholderTitle
	}

	res := ParseResult{
		Title:    title,
		Priority: st.priority,
	}
	if st.hasDue {
		due := st.due
		res.DueDate = &due
	}
	return res
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// atClock moves t to hour:minute:00 on the same calendar day.
func (p *Parser) atClock(t time.Time, hour, minute int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, p.location)
}
