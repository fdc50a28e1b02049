package repository

import (
	"context"

	"EconPulse/internal/domain/models"
)

// SourceAdapter fetches and normalizes one (entity, indicator) series from a
// single external provider. Adapters only read; the orchestrator owns all
// cache writes. An empty point list is a valid outcome, not an error.
type SourceAdapter interface {
	Fetch(ctx context.Context, profile models.EntityProfile, indicator string) ([]models.Point, error)
}

// Profiles resolves entity codes to their static reference data.
type Profiles interface {
	Get(code string) (models.EntityProfile, error)
	Codes() []string
}

type Metrics interface {
	RecordFetch(source, indicator string)
	RecordCacheHit(kind string)
	RecordCacheMiss(kind string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordLatestValue(entity, indicator string, value float64)
}
