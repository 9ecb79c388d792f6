package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// maxOffsetAmount bounds "in N <unit>" so hour offsets cannot overflow time.Duration.
const maxOffsetAmount = 100000

var (
	rePriority = regexp.MustCompile(`(?i)\b(low|medium|high)\s+priority\b`)
	reRemindMe = regexp.MustCompile(`(?i)^remind\s+me\b(?:\s+to\b)?`)
	reTomorrow = regexp.MustCompile(`(?i)\btomorrow\b`)
	reToday    = regexp.MustCompile(`(?i)\btoday\b`)
	reOffset   = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(hour|day|week)s?\b`)
	reWeekday  = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	reClock    = regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// rule is one detector in the pipeline. Rules run in slice order; a later
// rule may overwrite the due date set by an earlier one.
type rule struct {
	name  string
	apply func(p *Parser, st *parseState)
}

var rules = []rule{
	{name: "priority", apply: applyPriority},
	{name: "remind-me", apply: applyRemindMe},
	{name: "relative-day", apply: applyRelativeDay},
	{name: "offset", apply: applyOffset},
	{name: "weekday", apply: applyWeekday},
	{name: "time-of-day", apply: applyTimeOfDay},
}

func applyPriority(_ *Parser, st *parseState) {
	m := st.findFree(rePriority)
	if m == nil {
		return
	}
	st.priority = Priority(strings.ToLower(st.input[m[2]:m[3]]))
	st.consume(m[0], m[1])
}

// applyRemindMe strips "remind me [to]" when it opens the remaining text,
// i.e. once spans consumed by earlier rules are skipped.
func applyRemindMe(_ *Parser, st *parseState) {
	start := st.firstFreeIndex()
	if start >= len(st.input) {
		return
	}
	loc := reRemindMe.FindStringIndex(st.input[start:])
	if loc == nil {
		return
	}
	s, e := start+loc[0], start+loc[1]
	if st.spans.overlaps(s, e) {
		return
	}
	st.consume(s, e)
}

// applyRelativeDay handles "tomorrow" and "today". When both appear,
// tomorrow wins and both words are removed from the title.
func applyRelativeDay(_ *Parser, st *parseState) {
	if m := st.findFree(reTomorrow); m != nil {
		st.setDayDue(st.now.AddDate(0, 0, 1))
		st.consume(m[0], m[1])
	}
	if m := st.findFree(reToday); m != nil {
		if !st.hasDue {
			st.setDayDue(st.now)
		}
		st.consume(m[0], m[1])
	}
}

func applyOffset(_ *Parser, st *parseState) {
	m := st.findFree(reOffset)
	if m == nil {
		return
	}
	amount, err := strconv.Atoi(st.input[m[2]:m[3]])
	if err != nil || amount > maxOffsetAmount {
		return
	}

	switch strings.ToLower(st.input[m[4]:m[5]]) {
	case "hour":
		st.setExactDue(st.now.Add(time.Duration(amount) * time.Hour))
	case "day":
		st.setDayDue(st.now.AddDate(0, 0, amount))
	case "week":
		st.setDayDue(st.now.AddDate(0, 0, amount*7))
	}
	st.consume(m[0], m[1])
}

// applyWeekday resolves a weekday name to its next occurrence strictly after today.
// (?i) also folds non-ASCII letters such as U+017F into a match, so names
// that are not in the table are skipped.
func applyWeekday(_ *Parser, st *parseState) {
	for _, m := range reWeekday.FindAllStringSubmatchIndex(st.input, -1) {
		if st.spans.overlaps(m[0], m[1]) {
			continue
		}
		target, ok := weekdays[strings.ToLower(st.input[m[2]:m[3]])]
		if !ok {
			continue
		}
		st.setDayDue(st.now.AddDate(0, 0, daysUntil(st.now.Weekday(), target)))
		st.consume(m[0], m[1])
		return
	}
}

// daysUntil returns 1..7; a weekday equal to today means next week.
func daysUntil(current, target time.Weekday) int {
	n := (int(target) - int(current) + 7) % 7
	if n == 0 {
		n = 7
	}
	return n
}

// applyTimeOfDay refines an existing due date. A clock time alone never
// creates a due date and is left in the title.
func applyTimeOfDay(p *Parser, st *parseState) {
	if !st.hasDue {
		return
	}

	for _, m := range reClock.FindAllStringSubmatchIndex(st.input, -1) {
		if st.spans.overlaps(m[0], m[1]) {
			continue
		}
		hour, minute, ok := clockValue(st.input, m)
		if !ok {
			continue
		}
		st.due = p.atClock(st.due, hour, minute)
		st.consume(m[0], m[1])
		return
	}

	if st.dayGranular {
		st.due = p.atClock(st.due, p.defaultHour, 0)
	}
}

// clockValue normalises a reClock match into a 24-hour hour and minute.
// Without a meridiem the hour is taken literally.
func clockValue(input string, m []int) (hour, minute int, ok bool) {
	hour, err := strconv.Atoi(input[m[2]:m[3]])
	if err != nil {
		return 0, 0, false
	}
	if m[4] >= 0 {
		if minute, err = strconv.Atoi(input[m[4]:m[5]]); err != nil || minute > 59 {
			return 0, 0, false
		}
	}

	meridiem := ""
	if m[6] >= 0 {
		meridiem = strings.ToLower(input[m[6]:m[7]])
	}

	switch meridiem {
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return 0, 0, false
		}
	}
	return hour, minute, true
}
