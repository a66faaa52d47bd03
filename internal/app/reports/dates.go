// Package reports implements the criteria translation and the three
// reporting transforms (listing, summary, overview) over task collections
// fetched from the service. Everything here is a pure function of its inputs
// plus an injected "today"; nothing reads the ambient clock.
package reports

import "time"

const dayLayout = "2006-01-02"

// Grouping keys that are not calendar dates. Unscheduled sorts before all
// calendar dates, never after all of them; the two are only used in the
// summary counters and are never mixed within one sort.
const (
	BucketUnscheduled = "unscheduled"
	BucketNever       = "never"
)

// ParseDay parses a strict YYYY-MM-DD date. Anything else, including the
// empty string and the someday/never sentinels, reports false rather than an
// error: malformed dates are treated as absent throughout.
func ParseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsPastOrToday reports whether s is a parseable date on or before today.
func IsPastOrToday(s string, today time.Time) bool {
	d, ok := ParseDay(s)
	if !ok {
		return false
	}
	return !d.After(dayOf(today))
}

// StartBucket normalizes a start date into its grouping key. Past start
// dates fold forward to today's bucket so a fixed forward window does not
// silently drop tasks that started before it.
func StartBucket(s string, today time.Time) string {
	if s == "" {
		return BucketUnscheduled
	}
	if IsPastOrToday(s, today) {
		return dayOf(today).Format(dayLayout)
	}
	return s
}

// DueBucket normalizes a due date into its grouping key. Due dates are never
// folded: overdue items stay visible under their real date, and someday is a
// literal key.
func DueBucket(s string) string {
	if s == "" {
		return BucketNever
	}
	return s
}

// DayLabel renders a calendar day for display. Bucket keys stay ISO; only
// this function produces the human form.
func DayLabel(t time.Time) string {
	return t.Format("Mon Jan 2")
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
