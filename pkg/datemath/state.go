package datemath

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
)

// span is a half-open byte range [start, end) of the input.
type span struct {
	start, end int
}

type spanSet []span

func (s spanSet) overlaps(start, end int) bool {
	for _, sp := range s {
		if start < sp.end && sp.start < end {
			return true
		}
	}
	return false
}

// parseState is the accumulator shared by the rules. The input is never
// mutated; rules only record which spans they consumed.
type parseState struct {
	input string
	now   time.Time
	spans spanSet

	priority Priority

	due         time.Time
	hasDue      bool
	dayGranular bool
}

// findFree returns the submatch indices of the first match that does not
// touch an already consumed span.
func (st *parseState) findFree(re *regexp.Regexp) []int {
	for _, m := range re.FindAllStringSubmatchIndex(st.input, -1) {
		if !st.spans.overlaps(m[0], m[1]) {
			return m
		}
	}
	return nil
}

func (st *parseState) consume(start, end int) {
	if start < end {
		st.spans = append(st.spans, span{start: start, end: end})
	}
}

// firstFreeIndex skips leading whitespace and consumed spans.
func (st *parseState) firstFreeIndex() int {
	i := 0
	for i < len(st.input) {
		if end, ok := st.spanEndAt(i); ok {
			i = end
			continue
		}
		if !unicode.IsSpace(rune(st.input[i])) {
			break
		}
		i++
	}
	return i
}

func (st *parseState) spanEndAt(i int) (int, bool) {
	for _, sp := range st.spans {
		if i >= sp.start && i < sp.end {
			return sp.end, true
		}
	}
	return 0, false
}

func (st *parseState) setDayDue(t time.Time) {
	st.due, st.hasDue, st.dayGranular = t, true, true
}

func (st *parseState) setExactDue(t time.Time) {
	st.due, st.hasDue, st.dayGranular = t, true, false
}

// title strips every consumed span at once and cleans up the remainder.
// A dangling "at" directly next to a removed span is dropped with it.
func (st *parseState) title() string {
	spans := make(spanSet, len(st.spans))
	copy(spans, st.spans)
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var words []string
	pos := 0
	for i := 0; i <= len(spans); i++ {
		end := len(st.input)
		if i < len(spans) {
			end = spans[i].start
		}
		if end > pos {
			words = appendSegment(words, st.input[pos:end], i > 0, i < len(spans))
		}
		if i < len(spans) && spans[i].end > pos {
			pos = spans[i].end
		}
	}
	return CleanTitle(strings.Join(words, " "))
}

// appendSegment adds the words of one kept segment, dropping an "at" that
// borders a cut on either side.
func appendSegment(words []string, seg string, cutBefore, cutAfter bool) []string {
	fields := strings.Fields(seg)
	for i, f := range fields {
		if isAt(f) && ((cutBefore && i == 0) || (cutAfter && i == len(fields)-1)) {
			continue
		}
		words = append(words, f)
	}
	return words
}

// CleanTitle collapses runs of whitespace, trims, and drops trailing
// dangling "at" words. Applying it twice yields the same string.
func CleanTitle(s string) string {
	fields := strings.Fields(s)
	for len(fields) > 0 && isAt(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

func isAt(word string) bool {
	return strings.EqualFold(word, "at")
}
