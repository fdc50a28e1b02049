package analytics

import (
	"math"
	"testing"

	"EconPulse/internal/domain/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCorrelationPerfectInverse(t *testing.T) {
	got := Correlation([]float64{1, 2, 3, 4}, []float64{4, 3, 2, 1})
	if !almostEqual(got, -1) {
		t.Fatalf("expected -1, got %v", got)
	}
}

func TestCorrelationPerfectLinear(t *testing.T) {
	got := Correlation([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	if !almostEqual(got, 1) {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestCorrelationSymmetry(t *testing.T) {
	x := []float64{1.2, 3.4, 2.2, 5.9, 4.4}
	y := []float64{0.5, 2.1, 1.8, 4.0, 3.3}
	if !almostEqual(Correlation(x, y), Correlation(y, x)) {
		t.Fatalf("correlation must be symmetric")
	}
}

func TestCorrelationRange(t *testing.T) {
	x := []float64{1, 5, 2, 8, 3, 9, 4}
	y := []float64{2, 1, 7, 3, 9, 2, 8}
	r := Correlation(x, y)
	if r < -1 || r > 1 {
		t.Fatalf("coefficient out of range: %v", r)
	}
}

func TestCorrelationSelf(t *testing.T) {
	x := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	if !almostEqual(Correlation(x, x), 1) {
		t.Fatalf("self correlation of a non-constant vector must be 1")
	}
}

func TestCorrelationDegenerateInputs(t *testing.T) {
	cases := []struct {
		name string
		x, y []float64
	}{
		{"empty", nil, nil},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}},
		{"constant x", []float64{5, 5, 5}, []float64{1, 2, 3}},
		{"constant y", []float64{1, 2, 3}, []float64{7, 7, 7}},
	}
	for _, tc := range cases {
		if got := Correlation(tc.x, tc.y); got != 0 {
			t.Fatalf("%s: expected 0, got %v", tc.name, got)
		}
	}
}

func TestRollingCorrelationLength(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2, 4, 6, 8, 10, 12}
	out := RollingCorrelation(x, y, 3)
	if len(out) != 4 {
		t.Fatalf("expected len 4, got %d", len(out))
	}
	for i, r := range out {
		if !almostEqual(r, 1) {
			t.Fatalf("window %d: expected 1, got %v", i, r)
		}
	}
	if RollingCorrelation(x, y, 7) != nil {
		t.Fatalf("oversized window must return nil")
	}
}

func TestDescribeExampleVector(t *testing.T) {
	s := Describe([]float64{10, 20, 30})
	if !almostEqual(s.Mean, 20) {
		t.Fatalf("mean: %v", s.Mean)
	}
	if !almostEqual(s.Std, 8.1649658092772603) {
		t.Fatalf("std: %v", s.Std)
	}
	if s.Min != 10 || s.Max != 30 || !almostEqual(s.Median, 20) {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestDescribeEvenMedianAndEmpty(t *testing.T) {
	s := Describe([]float64{4, 1, 3, 2})
	if !almostEqual(s.Median, 2.5) {
		t.Fatalf("even median: %v", s.Median)
	}
	if z := Describe(nil); z != (models.Statistics{}) {
		t.Fatalf("empty input must return zero struct, got %+v", z)
	}
}

func TestMatrixSymmetricLookup(t *testing.T) {
	m := Matrix(map[string][]float64{
		"cpi": {1, 2, 3, 4},
		"gdp": {2, 4, 6, 8},
		"fx":  {4, 3, 2, 1},
	})
	if len(m) != 3 {
		t.Fatalf("expected 3 unordered pairs, got %d", len(m))
	}
	v1, ok1 := m.At("cpi", "gdp")
	v2, ok2 := m.At("gdp", "cpi")
	if !ok1 || !ok2 || !almostEqual(v1, v2) || !almostEqual(v1, 1) {
		t.Fatalf("pair lookup must ignore order: %v %v", v1, v2)
	}
}
