package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"EconPulse/internal/domain/models"
)

const chartBody = `{
  "chart": {
    "result": [
      {
        "timestamp": [1704067200, 1706745600, 1709251200],
        "indicators": {
          "quote": [
            {"open": [100.5, 0, 103.0], "close": [101.0, 102.5, -1]}
          ]
        }
      }
    ],
    "error": null
  }
}`

func testProfile() models.EntityProfile {
	return models.EntityProfile{Code: "us", IndexSymbol: "^GSPC", FXSymbol: "USDEUR=X"}
}

func TestFetchZipsTimestampsAndQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "%5EGSPC") && !strings.Contains(r.URL.Path, "^GSPC") {
			t.Errorf("expected index symbol in path, got %s", r.URL.Path)
		}
		w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, "1mo", "5y", 100)
	pts, err := c.Fetch(context.Background(), testProfile(), models.IndicatorIndex)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	// Third bar has close=-1 and open=103: a non-positive close falls back to open.
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d: %v", len(pts), pts)
	}
	if pts[0].Value != 101.0 {
		t.Fatalf("close must win over open, got %v", pts[0].Value)
	}
	if pts[1].Value != 102.5 {
		t.Fatalf("zero open must not mask close, got %v", pts[1].Value)
	}
	if pts[2].Value != 103.0 {
		t.Fatalf("non-positive close must fall back to open, got %v", pts[2].Value)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i-1].Date >= pts[i].Date {
			t.Fatalf("points must be ascending: %v", pts)
		}
	}
}

func TestFetchEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, "", "", 100)
	pts, err := c.Fetch(context.Background(), testProfile(), models.IndicatorFX)
	if err != nil {
		t.Fatalf("empty result is not an error: %v", err)
	}
	if len(pts) != 0 {
		t.Fatalf("expected no points, got %v", pts)
	}
}

func TestFetchMissingSymbol(t *testing.T) {
	c := New("http://unused", time.Second, "", "", 100)
	p := models.EntityProfile{Code: "xx"}
	if _, err := c.Fetch(context.Background(), p, models.IndicatorIndex); err == nil {
		t.Fatalf("missing index symbol must error")
	}
	if _, err := c.Fetch(context.Background(), p, models.IndicatorCPI); err == nil {
		t.Fatalf("statistical indicator must be rejected")
	}
}
