package worldbank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"EconPulse/internal/domain/models"
)

const sampleBody = `[
  {"page":1,"pages":1,"per_page":100,"total":4},
  [
    {"date":"2023","value":4.1},
    {"date":"2022","value":8.0},
    {"date":"2021","value":null},
    {"date":"2020","value":1.2}
  ]
]`

func testProfile() models.EntityProfile {
	return models.EntityProfile{Code: "us", WorldBankCode: "USA"}
}

func TestFetchNormalizesAnnualRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("missing format param")
		}
		w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, 40)
	pts, err := c.Fetch(context.Background(), testProfile(), models.IndicatorCPI)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(pts) != 3 {
		t.Fatalf("null values must be dropped, got %d points", len(pts))
	}
	if pts[0].Date != "2020-01-01" || pts[2].Date != "2023-01-01" {
		t.Fatalf("expected ascending year-mapped dates, got %v", pts)
	}
	if pts[2].Value != 4.1 {
		t.Fatalf("unexpected value %v", pts[2].Value)
	}
}

func TestFetchMalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"message":"no data"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, 40)
	if _, err := c.Fetch(context.Background(), testProfile(), models.IndicatorGDP); err == nil {
		t.Fatalf("short envelope must error")
	}
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, 40)
	if _, err := c.Fetch(context.Background(), testProfile(), models.IndicatorCPI); err == nil {
		t.Fatalf("non-2xx must error")
	}
}

func TestFetchUnsupportedIndicator(t *testing.T) {
	c := New("http://unused", time.Second, 40)
	if _, err := c.Fetch(context.Background(), testProfile(), models.IndicatorIndex); err == nil {
		t.Fatalf("market indicator must be rejected")
	}
}

func TestFetchMissingProviderCode(t *testing.T) {
	c := New("http://unused", time.Second, 40)
	if _, err := c.Fetch(context.Background(), models.EntityProfile{Code: "xx"}, models.IndicatorCPI); err == nil {
		t.Fatalf("missing provider code must error")
	}
}
