package usecase

import (
	"context"
	"fmt"

	"EconPulse/internal/domain/models"
	"EconPulse/internal/services/analytics"
)

// SeriesSpec names one series by entity and indicator.
type SeriesSpec struct {
	Entity    string
	Indicator string
}

// CorrelationResult carries the coefficient plus the aligned sample it was
// computed over, and optionally a rolling window series.
type CorrelationResult struct {
	Correlation float64          `json:"correlation"`
	SampleSize  int              `json:"sample_size"`
	Rolling     []float64        `json:"rolling,omitempty"`
	FreshnessA  models.Freshness `json:"freshness_a"`
	FreshnessB  models.Freshness `json:"freshness_b"`
}

// Correlate strictly aligns two series and computes their Pearson
// coefficient. window > 0 additionally computes a rolling correlation over
// the aligned vectors.
func (e *Engine) Correlate(ctx context.Context, a, b SeriesSpec, window int) (*CorrelationResult, error) {
	ra, err := e.GetSeries(ctx, a.Entity, a.Indicator)
	if err != nil {
		return nil, fmt.Errorf("series %s/%s: %w", a.Entity, a.Indicator, err)
	}
	rb, err := e.GetSeries(ctx, b.Entity, b.Indicator)
	if err != nil {
		return nil, fmt.Errorf("series %s/%s: %w", b.Entity, b.Indicator, err)
	}

	rows := analytics.Align([][]models.Point{ra.Points, rb.Points}, analytics.Strict)
	x, y := analytics.Columns(rows, 0, 1)

	res := &CorrelationResult{
		Correlation: analytics.Correlation(x, y),
		SampleSize:  len(rows),
		FreshnessA:  ra.Freshness,
		FreshnessB:  rb.Freshness,
	}
	if window > 0 {
		res.Rolling = analytics.RollingCorrelation(x, y, window)
	}
	return res, nil
}

// CorrelateMatrix fetches one indicator for several entities, strictly aligns
// the series and computes all pairwise Pearson coefficients. Entities whose
// series could not be produced are reported in errs and left out of the
// matrix.
func (e *Engine) CorrelateMatrix(ctx context.Context, codes []string, indicator string) (models.CorrelationMatrix, map[string]string) {
	batch := e.GetBatch(ctx, codes, indicator)

	errs := make(map[string]string)
	var okCodes []string
	for _, code := range codes {
		entry, found := batch[code]
		if !found {
			continue
		}
		if entry.Err != "" || entry.Result == nil {
			errs[code] = entry.Err
			continue
		}
		okCodes = append(okCodes, code)
	}
	if len(okCodes) < 2 {
		return models.CorrelationMatrix{}, errs
	}

	pointSets := make([][]models.Point, len(okCodes))
	for i, code := range okCodes {
		pointSets[i] = batch[code].Result.Points
	}
	rows := analytics.Align(pointSets, analytics.Strict)

	series := make(map[string][]float64, len(okCodes))
	for i, code := range okCodes {
		series[code] = analytics.Column(rows, i)
	}
	return analytics.Matrix(series), errs
}

// Compare computes per-period statistics and correlations for the same
// series pair over two disjoint date ranges.
func (e *Engine) Compare(ctx context.Context, a, b SeriesSpec, rangeA, rangeB analytics.DateRange) (*models.PeriodComparison, error) {
	ra, err := e.GetSeries(ctx, a.Entity, a.Indicator)
	if err != nil {
		return nil, fmt.Errorf("series %s/%s: %w", a.Entity, a.Indicator, err)
	}
	rb, err := e.GetSeries(ctx, b.Entity, b.Indicator)
	if err != nil {
		return nil, fmt.Errorf("series %s/%s: %w", b.Entity, b.Indicator, err)
	}

	cmp := analytics.ComparePeriods(ra.Points, rb.Points, rangeA, rangeB)
	return &cmp, nil
}
