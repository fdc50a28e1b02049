package usecase

import (
	"context"
	"sync"
	"time"

	"EconPulse/internal/domain/models"
)

// GetEntitySnapshot fetches all of the entity's configured indicators
// concurrently and assembles a consolidated view. A failing indicator lands
// in Errors without aborting its siblings.
func (e *Engine) GetEntitySnapshot(ctx context.Context, code string) (*models.EntitySnapshot, error) {
	profile, err := e.profiles.Get(code)
	if err != nil {
		return nil, err
	}

	snap := &models.EntitySnapshot{
		Profile:   profile,
		Timestamp: time.Now(),
		Series:    map[string]models.SeriesResult{},
		Errors:    map[string]string{},
	}

	type item struct {
		indicator string
		res       *models.SeriesResult
		err       error
	}
	indicators := indicatorsFor(profile)
	ch := make(chan item, len(indicators))
	var wg sync.WaitGroup

	for _, ind := range indicators {
		wg.Add(1)
		go func(ind string) {
			defer wg.Done()
			res, err := e.GetSeries(ctx, code, ind)
			ch <- item{ind, res, err}
		}(ind)
	}

	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		if it.err != nil {
			snap.Errors[it.indicator] = it.err.Error()
			continue
		}
		snap.Series[it.indicator] = *it.res
		if it.res.Freshness.Status == models.StatusError {
			snap.Errors[it.indicator] = it.res.Freshness.Warning
		}
	}

	if len(snap.Errors) == 0 {
		snap.Errors = nil
	}
	return snap, nil
}
