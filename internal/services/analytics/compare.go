package analytics

import "EconPulse/internal/domain/models"

// DateRange is an inclusive ISO calendar date range.
type DateRange struct {
	From string
	To   string
}

// ComparePeriods strictly aligns the same series pair over two disjoint date
// ranges and computes per-period statistics and correlations. Consumers use
// it to detect regime shifts between the periods.
func ComparePeriods(a, b []models.Point, rangeA, rangeB DateRange) models.PeriodComparison {
	rowsA := Align([][]models.Point{
		Window(a, rangeA.From, rangeA.To),
		Window(b, rangeA.From, rangeA.To),
	}, Strict)
	rowsB := Align([][]models.Point{
		Window(a, rangeB.From, rangeB.To),
		Window(b, rangeB.From, rangeB.To),
	}, Strict)

	xA, yA := Columns(rowsA, 0, 1)
	xB, yB := Columns(rowsB, 0, 1)

	flatA := append(append([]float64{}, xA...), yA...)
	flatB := append(append([]float64{}, xB...), yB...)

	return models.PeriodComparison{
		StatsA: Describe(flatA),
		StatsB: Describe(flatB),
		CorrA:  Correlation(xA, yA),
		CorrB:  Correlation(xB, yB),
		RowsA:  len(rowsA),
		RowsB:  len(rowsB),
	}
}
