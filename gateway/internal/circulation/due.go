package circulation

import (
	"strings"
	"time"
)

const DateLayout = time.DateOnly

// The backend serialises dates either as plain dates, MySQL datetimes or,
// when Flask's jsonify handles a date object, as RFC1123 strings.
var dueLayouts = []struct {
	layout   string
	dateOnly bool
}{
	{time.DateOnly, true},
	{time.DateTime, false},
	{time.RFC3339, false},
	{time.RFC1123, false},
	{time.RFC1123Z, false},
	{"2006-01-02T15:04:05", false},
}

// ParseDue parses a backend date. Values without a zone are read in loc,
// date-only values included: "2024-03-10" is midnight in loc, not midnight
// UTC as a browser Date would read it, so a due day never shifts with the
// server's zone. The second result is false for empty or unparseable input.
func ParseDue(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, l := range dueLayouts {
		t, err := time.ParseInLocation(l.layout, raw, loc)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysSince counts calendar days from due to now, both read in now's
// location. Negative when due is still ahead.
func daysSince(due, now time.Time) int {
	due = startOfDay(due.In(now.Location()))
	now = startOfDay(now)
	// noon-anchored UTC dates keep DST shifts out of the division
	d := time.Date(due.Year(), due.Month(), due.Day(), 12, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.UTC)
	return int(n.Sub(d).Hours() / 24)
}
