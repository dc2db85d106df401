package board

import (
	"regexp"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// NoDeadline is shown for postings whose deadline is missing or unreadable.
const NoDeadline = "No deadline"

// deadlineLayout renders dates as "10 Jan 2025".
const deadlineLayout = "02 Jan 2006"

var (
	// Sheets serialises date cells as Date(2025,0,10) with a zero-based month.
	tokenDateRegex = regexp.MustCompile(`Date\((\d+),(\d+),(\d+)\)`)
	isoDateRegex   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

	// MaxDeadline stands in for a missing deadline when sorting. It is the
	// largest instant an ECMAScript date can hold.
	MaxDeadline = time.UnixMilli(8640000000000000).UTC()
)

// ParseDeadline normalises a raw deadline cell into a calendar date at
// midnight in loc. The boolean is false when the value is empty or cannot
// be read as a date.
func ParseDeadline(raw string, loc *time.Location) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	if m := tokenDateRegex.FindStringSubmatch(raw); m != nil {
		if t, ok := dateFromParts(m[1], m[2], m[3], 0, loc); ok {
			return t, true
		}
	}

	if m := isoDateRegex.FindStringSubmatch(raw); m != nil {
		if t, ok := dateFromParts(m[1], m[2], m[3], -1, loc); ok {
			return t, true
		}
	}

	t, err := dateparse.ParseIn(raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(loc), true
}

// dateFromParts builds a date from decimal year, month and day strings.
// monthOffset converts the month to zero-based; time.Month is one-based so
// one is added back. Out-of-range parts roll over into neighbouring months.
func dateFromParts(year, month, day string, monthOffset int, loc *time.Location) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m+monthOffset+1), d, 0, 0, 0, 0, loc), true
}

// FormatDeadline renders a raw deadline as "DD Mon YYYY", or NoDeadline.
func FormatDeadline(raw string, loc *time.Location) string {
	t, ok := ParseDeadline(raw, loc)
	if !ok {
		return NoDeadline
	}
	return t.Format(deadlineLayout)
}

// sortKey is the comparable deadline of a record; missing dates sort as MaxDeadline.
func sortKey(raw string, loc *time.Location) time.Time {
	if t, ok := ParseDeadline(raw, loc); ok {
		return t
	}
	return MaxDeadline
}
