package usecase

import (
	"context"
	"sort"
	"sync"

	"EconPulse/internal/domain/models"
)

// GetBatch fans out one pipeline invocation per entity, bounded by the
// configured worker count so a large entity set cannot overwhelm the
// external providers. Per-entity failures are isolated: one entity's total
// unavailability never aborts its siblings, and the call itself never fails.
func (e *Engine) GetBatch(ctx context.Context, codes []string, indicator string) models.BatchResult {
	type item struct {
		code string
		res  *models.SeriesResult
		err  error
	}
	ch := make(chan item, len(codes))
	sem := make(chan struct{}, e.opts.BatchWorkers)
	var wg sync.WaitGroup

	for _, code := range codes {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			res, err := e.GetSeries(ctx, code, indicator)
			ch <- item{code, res, err}
		}(code)
	}

	go func() { wg.Wait(); close(ch) }()

	out := make(models.BatchResult, len(codes))
	for it := range ch {
		switch {
		case it.err != nil:
			out[it.code] = models.BatchEntry{Entity: it.code, Err: it.err.Error()}
		case it.res.Freshness.Status == models.StatusError:
			// Total unavailability: live and fallback both came up empty.
			out[it.code] = models.BatchEntry{Entity: it.code, Err: it.res.Freshness.Warning}
		default:
			out[it.code] = models.BatchEntry{Entity: it.code, Result: it.res}
		}
	}
	return out
}

// RankBatch orders batch entries by their latest indicator value,
// descending. The sort is stable over the request order and entities with no
// latest value (failed or empty) rank last.
func RankBatch(batch models.BatchResult, codes []string) []models.RankedEntry {
	entries := make([]models.RankedEntry, 0, len(codes))
	for _, code := range codes {
		be, ok := batch[code]
		if !ok {
			continue
		}
		re := models.RankedEntry{Entity: code, Err: be.Err}
		if be.Result != nil {
			if p, ok := be.Result.Latest(); ok {
				latest := p
				re.Latest = &latest
			}
		}
		entries = append(entries, re)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Latest, entries[j].Latest
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Value > b.Value
	})
	return entries
}
