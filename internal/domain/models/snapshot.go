package models

import "time"

// EntitySnapshot is a consolidated view of one entity's series across all
// configured indicators.
type EntitySnapshot struct {
	Profile   EntityProfile           `json:"profile"`
	Timestamp time.Time               `json:"timestamp"`
	Series    map[string]SeriesResult `json:"series"`
	Errors    map[string]string       `json:"errors,omitempty"`
}

// BatchEntry is one entity's outcome inside a multi-entity batch. Exactly one
// of Result or Err is set; a failed entity never aborts its siblings.
type BatchEntry struct {
	Entity string        `json:"entity"`
	Result *SeriesResult `json:"result,omitempty"`
	Err    string        `json:"error,omitempty"`
}

// BatchResult maps entity codes to their per-entity outcomes.
type BatchResult map[string]BatchEntry

// RankedEntry is a batch entry positioned by its latest indicator value.
type RankedEntry struct {
	Entity string `json:"entity"`
	Latest *Point `json:"latest,omitempty"`
	Err    string `json:"error,omitempty"`
}
