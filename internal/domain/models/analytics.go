package models

// AlignedRow is one date shared across several series. Values is keyed by
// the index of the series in the alignment request.
type AlignedRow struct {
	Date   string          `json:"date"`
	Values map[int]float64 `json:"values"`
}

// Statistics are descriptive statistics over one flattened value vector.
// Std is the population standard deviation (divide by n).
type Statistics struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// PairKey identifies an unordered pair of series by name.
type PairKey struct {
	A string `json:"a"`
	B string `json:"b"`
}

// CorrelationMatrix maps unordered series pairs to Pearson coefficients.
type CorrelationMatrix map[PairKey]float64

// At returns the coefficient for (a, b) regardless of argument order.
func (m CorrelationMatrix) At(a, b string) (float64, bool) {
	if v, ok := m[PairKey{A: a, B: b}]; ok {
		return v, true
	}
	v, ok := m[PairKey{A: b, B: a}]
	return v, ok
}

// PeriodComparison holds per-period statistics and correlations for two
// disjoint date ranges of the same series pair. Used to detect regime shifts.
type PeriodComparison struct {
	StatsA Statistics `json:"stats_a"`
	StatsB Statistics `json:"stats_b"`
	CorrA  float64    `json:"corr_a"`
	CorrB  float64    `json:"corr_b"`
	RowsA  int        `json:"rows_a"`
	RowsB  int        `json:"rows_b"`
}
