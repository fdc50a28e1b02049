package fallback

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"EconPulse/internal/domain/models"
	drepo "EconPulse/internal/domain/repository"
	"EconPulse/pkg/util"
)

// Store serves bundled static datasets when network adapters are down or
// return nothing. Files live at <dir>/<entity>_<indicator>.csv with
// date,value columns. Missing files yield an empty series, not an error.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Fetch reads the bundled dataset synchronously. No network.
func (s *Store) Fetch(_ context.Context, profile models.EntityProfile, indicator string) ([]models.Point, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.csv", profile.Code, indicator))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fallback open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("fallback read %s: %w", path, err)
	}

	points := make([]models.Point, 0, len(rows))
	for i, row := range rows {
		// optional header
		if i == 0 && row[0] == "date" {
			continue
		}
		date := row[0]
		if d, ok := util.YearDate(date); ok {
			date = d
		} else if _, ok := util.ParseISODate(date); !ok {
			continue
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		points = append(points, models.Point{Date: date, Value: v})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

var _ drepo.SourceAdapter = (*Store)(nil)
