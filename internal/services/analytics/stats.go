package analytics

import (
	"math"
	"sort"

	"EconPulse/internal/domain/models"
)

// Correlation computes the Pearson coefficient between two equal-length
// vectors. It returns 0 when lengths differ, either vector is empty, or
// either vector has zero variance. The silent zero on degenerate input is a
// compatibility choice kept on purpose: callers treat 0 as "no relationship"
// rather than distinguishing an undefined one.
func Correlation(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	fn := float64(n)
	den := math.Sqrt((fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY))
	if den == 0 || math.IsNaN(den) {
		return 0
	}
	return (fn*sumXY - sumX*sumY) / den
}

// RollingCorrelation computes Correlation over a trailing window at every
// position from window-1 on. Result length is len(x)-window+1; nil when the
// window does not fit.
func RollingCorrelation(x, y []float64, window int) []float64 {
	if window <= 0 || len(x) < window || len(x) != len(y) {
		return nil
	}
	out := make([]float64, 0, len(x)-window+1)
	for i := window - 1; i < len(x); i++ {
		out = append(out, Correlation(x[i-window+1:i+1], y[i-window+1:i+1]))
	}
	return out
}

// Describe computes descriptive statistics over one value vector. Std is the
// population standard deviation. Empty input returns the zero struct.
func Describe(values []float64) models.Statistics {
	n := len(values)
	if n == 0 {
		return models.Statistics{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}

	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return models.Statistics{
		Mean:   mean,
		Std:    math.Sqrt(ss / float64(n)),
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: median,
	}
}

// Matrix computes pairwise correlations between named vectors. The result is
// symmetric: each unordered pair appears once, keyed in lexical order.
func Matrix(series map[string][]float64) models.CorrelationMatrix {
	names := make([]string, 0, len(series))
	for n := range series {
		names = append(names, n)
	}
	sort.Strings(names)

	m := make(models.CorrelationMatrix)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			m[models.PairKey{A: names[i], B: names[j]}] = Correlation(series[names[i]], series[names[j]])
		}
	}
	return m
}
