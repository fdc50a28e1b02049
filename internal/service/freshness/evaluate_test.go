package freshness

import (
	"testing"
	"time"

	"EconPulse/internal/domain/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEvaluateEmptySeries(t *testing.T) {
	e := New()
	f := e.Evaluate(nil, models.SourceLive)
	if f.Status != models.StatusError {
		t.Fatalf("expected error status, got %s", f.Status)
	}
	if f.Warning != "no data available" {
		t.Fatalf("unexpected warning %q", f.Warning)
	}
	if f.SourceKind != models.SourceLive {
		t.Fatalf("source kind must be reported as given")
	}
}

func TestEvaluateStaleBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := NewWithClock(fixedClock(now))

	exactly60 := []models.Point{{Date: "2025-04-02", Value: 1}} // 60 days before now
	f := e.Evaluate(exactly60, models.SourceLive)
	if f.IsStale {
		t.Fatalf("exactly 60 days must not be stale, days=%d", f.DaysSinceUpdate)
	}
	if f.Warning != "" {
		t.Fatalf("no warning expected when fresh, got %q", f.Warning)
	}

	days61 := []models.Point{{Date: "2025-04-01", Value: 1}}
	f = e.Evaluate(days61, models.SourceLive)
	if !f.IsStale {
		t.Fatalf("61 days must be stale, days=%d", f.DaysSinceUpdate)
	}
	if f.Warning == "" {
		t.Fatalf("stale series must carry a warning")
	}
	if f.Status != models.StatusLive {
		t.Fatalf("age alone does not change status, got %s", f.Status)
	}
}

func TestEvaluateFallbackAlwaysStale(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	e := NewWithClock(fixedClock(now))
	pts := []models.Point{{Date: "2025-05-31", Value: 3.2}}
	f := e.Evaluate(pts, models.SourceFallback)
	if f.Status != models.StatusStale {
		t.Fatalf("fallback data must report stale status, got %s", f.Status)
	}
	if f.IsStale {
		t.Fatalf("a one day old point is not age-stale")
	}
	if f.PointCount != 1 || f.LastUpdate != "2025-05-31" {
		t.Fatalf("unexpected metadata %+v", f)
	}
}
