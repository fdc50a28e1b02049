package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseISODate(t *testing.T) {
	got, ok := ParseISODate("2023-07-04")
	if !ok {
		t.Fatalf("expected ok")
	}
	if FormatISODate(got) != "2023-07-04" {
		t.Fatalf("round trip mismatch: %v", got)
	}
	if _, ok := ParseISODate("2023-7-4"); ok {
		t.Fatalf("loose date should not parse")
	}
}

func TestYearDate(t *testing.T) {
	d, ok := YearDate("2021")
	if !ok || d != "2021-01-01" {
		t.Fatalf("unexpected %q %v", d, ok)
	}
	if _, ok := YearDate("21"); ok {
		t.Fatalf("short year should fail")
	}
	if _, ok := YearDate("abcd"); ok {
		t.Fatalf("non-numeric year should fail")
	}
}

func TestWholeDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := a.Add(61*24*time.Hour + 3*time.Hour)
	if got := WholeDaysBetween(a, b); got != 61 {
		t.Fatalf("expected 61 days, got %d", got)
	}
}

func TestSplitCodes(t *testing.T) {
	got := SplitCodes(" us, de ,,jp ")
	if len(got) != 3 || got[0] != "us" || got[1] != "de" || got[2] != "jp" {
		t.Fatalf("unexpected %v", got)
	}
}
