package models

// SourceKind identifies where a series was obtained from.
type SourceKind string

const (
	SourceLive     SourceKind = "live"
	SourceCache    SourceKind = "cache"
	SourceFallback SourceKind = "fallback"
)

// Status classifies how trustworthy a series is.
type Status string

const (
	StatusLive  Status = "live"
	StatusStale Status = "stale"
	StatusError Status = "error"
)

// Point is one observation of an economic series.
// Date is an ISO-8601 calendar date (YYYY-MM-DD).
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Freshness describes the age and provenance of a series.
// Computed once from the series data and never mutated afterwards.
type Freshness struct {
	SourceKind      SourceKind `json:"source_kind"`
	Status          Status     `json:"status"`
	LastUpdate      string     `json:"last_update,omitempty"`
	DaysSinceUpdate int        `json:"days_since_update"`
	IsStale         bool       `json:"is_stale"`
	Warning         string     `json:"warning,omitempty"`
	PointCount      int        `json:"point_count"`
}

// SeriesResult is a normalized series with its freshness metadata.
// Callers must treat it as immutable and copy before mutating.
type SeriesResult struct {
	Points    []Point   `json:"points"`
	Freshness Freshness `json:"freshness"`
}

// Latest returns the most recent point, or false when the series is empty.
func (s *SeriesResult) Latest() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}
