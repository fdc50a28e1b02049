package analytics

import (
	"sort"

	"EconPulse/internal/domain/models"
)

// Mode selects how dates are merged across series.
type Mode int

const (
	// Strict keeps only dates present in every series. Output rows carry a
	// value for every column, which guarantees equal-length vectors for the
	// statistics engine.
	Strict Mode = iota
	// Loose keeps the union of all dates with missing columns left out of
	// the row's value map. Used for charting and merged views.
	Loose
)

// Align merges N independently-dated series into date-keyed joint rows,
// sorted ascending by date. An empty strict intersection yields an empty
// slice, not an error.
func Align(series [][]models.Point, mode Mode) []models.AlignedRow {
	if len(series) == 0 {
		return nil
	}

	byDate := make(map[string]map[int]float64)
	for idx, s := range series {
		for _, p := range s {
			row, ok := byDate[p.Date]
			if !ok {
				row = make(map[int]float64, len(series))
				byDate[p.Date] = row
			}
			row[idx] = p.Value
		}
	}

	rows := make([]models.AlignedRow, 0, len(byDate))
	for date, values := range byDate {
		if mode == Strict && len(values) != len(series) {
			continue
		}
		rows = append(rows, models.AlignedRow{Date: date, Values: values})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// Columns extracts the value vectors for two column indexes from strictly
// aligned rows. Rows missing either column are skipped so the vectors stay
// index-aligned and equal length.
func Columns(rows []models.AlignedRow, i, j int) (x, y []float64) {
	x = make([]float64, 0, len(rows))
	y = make([]float64, 0, len(rows))
	for _, r := range rows {
		vi, oki := r.Values[i]
		vj, okj := r.Values[j]
		if !oki || !okj {
			continue
		}
		x = append(x, vi)
		y = append(y, vj)
	}
	return x, y
}

// Column extracts one column's values from aligned rows, skipping rows where
// the column is undefined.
func Column(rows []models.AlignedRow, i int) []float64 {
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		if v, ok := r.Values[i]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Window restricts points to the inclusive [from, to] ISO date range.
func Window(points []models.Point, from, to string) []models.Point {
	out := make([]models.Point, 0, len(points))
	for _, p := range points {
		if (from == "" || p.Date >= from) && (to == "" || p.Date <= to) {
			out = append(out, p)
		}
	}
	return out
}
