package freshness

import (
	"fmt"
	"time"

	"EconPulse/internal/domain/models"
	"EconPulse/pkg/util"
)

// StaleAfterDays is the age past which the newest point marks a series stale.
const StaleAfterDays = 60

// Evaluator derives freshness metadata from a series' own data. Pure: no
// I/O, no mutation. The clock is injectable for tests.
type Evaluator struct {
	now func() time.Time
}

func New() *Evaluator {
	return &Evaluator{now: time.Now}
}

// NewWithClock builds an evaluator with a fixed clock.
func NewWithClock(now func() time.Time) *Evaluator {
	return &Evaluator{now: now}
}

// Evaluate stamps a normalized point list with freshness metadata.
// Empty series report StatusError; fallback data reports StatusStale
// regardless of age, since it is inherently suspect.
func (e *Evaluator) Evaluate(points []models.Point, kind models.SourceKind) models.Freshness {
	if len(points) == 0 {
		return models.Freshness{
			SourceKind: kind,
			Status:     models.StatusError,
			Warning:    "no data available",
		}
	}

	last := points[len(points)-1]
	f := models.Freshness{
		SourceKind: kind,
		Status:     models.StatusLive,
		LastUpdate: last.Date,
		PointCount: len(points),
	}

	if t, ok := util.ParseISODate(last.Date); ok {
		f.DaysSinceUpdate = util.WholeDaysBetween(t, e.now())
	}
	f.IsStale = f.DaysSinceUpdate > StaleAfterDays
	if f.IsStale {
		f.Warning = fmt.Sprintf("latest point is %d days old", f.DaysSinceUpdate)
	}
	// Age only raises the IsStale flag; Status tracks provenance. Fallback
	// data is always reported stale regardless of age.
	if kind == models.SourceFallback {
		f.Status = models.StatusStale
	}
	return f
}
