package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"EconPulse/internal/domain/models"
	drepo "EconPulse/internal/domain/repository"
	xhttp "EconPulse/pkg/http"
	"EconPulse/pkg/util"
)

// Indicator codes in the provider's own code space.
const (
	codeCPI = "FP.CPI.TOTL.ZG"
	codeGDP = "NY.GDP.MKTP.KD.ZG"
)

// Client fetches annual statistical indicators (CPI, GDP growth) from the
// World Bank open data API and normalizes them into calendar-dated points.
type Client struct {
	baseURL   string
	perPage   int
	yearsBack int
	client    *xhttp.Client
}

// New creates a statistical indicator adapter.
func New(baseURL string, timeout time.Duration, yearsBack int) *Client {
	if yearsBack <= 0 {
		yearsBack = 40
	}
	return &Client{
		baseURL:   baseURL,
		perPage:   100,
		yearsBack: yearsBack,
		client:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// record is one observation in the provider's response. Value is a pointer
// because the provider reports missing years as null.
type record struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// Fetch requests the indicator history for the profile's provider code and
// returns points sorted ascending by date with nulls dropped.
func (c *Client) Fetch(ctx context.Context, profile models.EntityProfile, indicator string) ([]models.Point, error) {
	code, err := c.indicatorCode(indicator)
	if err != nil {
		return nil, err
	}
	if profile.WorldBankCode == "" {
		return nil, fmt.Errorf("worldbank: no provider code for entity %s", profile.Code)
	}

	year := time.Now().Year()
	url := fmt.Sprintf("%s/country/%s/indicator/%s", c.baseURL, profile.WorldBankCode, code)

	// The provider wraps the record list in a two-element array; the first
	// element is paging metadata.
	var envelope []json.RawMessage
	err = c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    url,
		QueryParams: map[string][]string{
			"format":   {"json"},
			"per_page": {fmt.Sprintf("%d", c.perPage)},
			"date":     {fmt.Sprintf("%d:%d", year-c.yearsBack, year)},
		},
	}, &envelope)
	if err != nil {
		return nil, fmt.Errorf("worldbank fetch %s/%s: %w", profile.WorldBankCode, code, err)
	}
	if len(envelope) < 2 {
		return nil, fmt.Errorf("worldbank: unexpected envelope shape (%d elements)", len(envelope))
	}

	var records []record
	if err := json.Unmarshal(envelope[1], &records); err != nil {
		return nil, fmt.Errorf("worldbank: decode records: %w", err)
	}

	return normalize(records), nil
}

// normalize drops null and non-finite values, maps years to calendar dates
// and sorts ascending.
func normalize(records []record) []models.Point {
	points := make([]models.Point, 0, len(records))
	for _, r := range records {
		if r.Value == nil || math.IsNaN(*r.Value) || math.IsInf(*r.Value, 0) {
			continue
		}
		date := r.Date
		if d, ok := util.YearDate(r.Date); ok {
			date = d
		} else if _, ok := util.ParseISODate(r.Date); !ok {
			continue
		}
		points = append(points, models.Point{Date: date, Value: *r.Value})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func (c *Client) indicatorCode(indicator string) (string, error) {
	switch indicator {
	case models.IndicatorCPI:
		return codeCPI, nil
	case models.IndicatorGDP:
		return codeGDP, nil
	default:
		return "", fmt.Errorf("worldbank: unsupported indicator %q", indicator)
	}
}

var _ drepo.SourceAdapter = (*Client)(nil)
