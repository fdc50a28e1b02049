package quotes

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"EconPulse/internal/domain/models"
	drepo "EconPulse/internal/domain/repository"
	xhttp "EconPulse/pkg/http"
	"EconPulse/pkg/util"

	"golang.org/x/time/rate"
)

// chartResponse mirrors the quote provider's chart payload: parallel arrays
// of unix timestamps and quote blocks. Required/optional fields are declared
// explicitly so a missing block yields an empty result, not a type error.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  any           `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []quoteBlock `json:"quote"`
	} `json:"indicators"`
}

type quoteBlock struct {
	Open  []float64 `json:"open"`
	Close []float64 `json:"close"`
}

// Client fetches daily/monthly index and FX quotes from a chart-style quote
// API. Outbound calls are throttled to stay inside the provider's rate limits.
type Client struct {
	baseURL   string
	interval  string
	dataRange string
	client    *xhttp.Client
	limiter   *rate.Limiter
}

// New creates a market quote adapter. rps bounds outbound requests per second.
func New(baseURL string, timeout time.Duration, interval, dataRange string, rps float64) *Client {
	if interval == "" {
		interval = "1mo"
	}
	if dataRange == "" {
		dataRange = "5y"
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		baseURL:   baseURL,
		interval:  interval,
		dataRange: dataRange,
		client:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Fetch resolves the provider symbol from the profile, requests the chart and
// zips timestamps with quotes into calendar-dated points.
func (c *Client) Fetch(ctx context.Context, profile models.EntityProfile, indicator string) ([]models.Point, error) {
	symbol, err := symbolFor(profile, indicator)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("quotes: rate wait: %w", err)
	}

	var resp chartResponse
	err = c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, symbol),
		QueryParams: map[string][]string{
			"interval": {c.interval},
			"range":    {c.dataRange},
		},
		Headers: map[string]string{"User-Agent": "econpulse/1.0"},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("quotes fetch %s: %w", symbol, err)
	}

	if len(resp.Chart.Result) == 0 {
		return nil, nil
	}
	return normalize(resp.Chart.Result[0]), nil
}

// normalize zips parallel arrays into points, preferring close over open and
// dropping non-positive or non-finite values.
func normalize(r chartResult) []models.Point {
	if len(r.Indicators.Quote) == 0 {
		return nil
	}
	q := r.Indicators.Quote[0]

	byDate := make(map[string]float64, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		v := 0.0
		if i < len(q.Close) {
			v = q.Close[i]
		}
		if v <= 0 && i < len(q.Open) {
			v = q.Open[i]
		}
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		byDate[util.FormatISODate(time.Unix(ts, 0))] = v
	}

	points := make([]models.Point, 0, len(byDate))
	for d, v := range byDate {
		points = append(points, models.Point{Date: d, Value: v})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func symbolFor(profile models.EntityProfile, indicator string) (string, error) {
	switch indicator {
	case models.IndicatorIndex:
		if profile.IndexSymbol == "" {
			return "", fmt.Errorf("quotes: no index symbol for entity %s", profile.Code)
		}
		return profile.IndexSymbol, nil
	case models.IndicatorFX:
		if profile.FXSymbol == "" {
			return "", fmt.Errorf("quotes: no fx symbol for entity %s", profile.Code)
		}
		return profile.FXSymbol, nil
	default:
		return "", fmt.Errorf("quotes: unsupported indicator %q", indicator)
	}
}

var _ drepo.SourceAdapter = (*Client)(nil)
