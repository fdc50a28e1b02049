package util

import (
	"strconv"
	"time"
)

// ISODate is the calendar date layout used across all normalized series.
const ISODate = "2006-01-02"

// ParseTime tries RFC3339, ISO calendar date, and unix seconds. Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(ISODate, s); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}

// ParseISODate parses a strict YYYY-MM-DD date in UTC.
func ParseISODate(s string) (time.Time, bool) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatISODate renders t as YYYY-MM-DD in UTC.
func FormatISODate(t time.Time) string {
	return t.UTC().Format(ISODate)
}

// YearDate maps a bare year ("2021") to the first calendar day of that year.
// Returns ("", false) for anything that is not a 4-digit year.
func YearDate(s string) (string, bool) {
	if len(s) != 4 {
		return "", false
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1000 {
		return "", false
	}
	return s + "-01-01", true
}

// WholeDaysBetween returns the number of whole days from a to b.
func WholeDaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
