package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domrepo "github.com/Dhruvg12/financial-app/internal/domain/repository"
)

const chartBody = `{
  "chart": {
    "result": [{
      "timestamp": [1704240000, 1704153600, 1704153600],
      "indicators": {
        "quote": [{
          "open":   [105.0, 100.0, 100.0],
          "high":   [112.0, 101.5, 101.5],
          "low":    [104.0, 99.0, 99.0],
          "close":  [110.0, null, null],
          "volume": [2000, 1000, 1000]
        }]
      }
    }],
    "error": null
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (domrepo.History, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, "test-agent"), srv
}

func TestFetchPeriod(t *testing.T) {
	var gotPath, gotRange, gotInterval, gotAgent string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRange = r.URL.Query().Get("range")
		gotInterval = r.URL.Query().Get("interval")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chartBody))
	})

	series, err := client.FetchPeriod(context.Background(), "TSLA", "6mo", domrepo.IntervalDaily)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/v8/finance/chart/TSLA" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotRange != "6mo" || gotInterval != "1d" {
		t.Fatalf("unexpected query (%q, %q)", gotRange, gotInterval)
	}
	if gotAgent != "test-agent" {
		t.Fatalf("unexpected user agent %q", gotAgent)
	}

	if len(series.Columns) != 5 {
		t.Fatalf("expected 5 columns, got %d", len(series.Columns))
	}
	if series.Columns[3].Name != "Close" || series.Columns[3].Sub != "TSLA" {
		t.Fatalf("expected (Close, TSLA) label, got %+v", series.Columns[3])
	}

	// duplicate timestamps drop, rows come back ascending
	if len(series.Rows) != 2 {
		t.Fatalf("expected 2 rows after dedupe, got %d", len(series.Rows))
	}
	if !series.Rows[0].Time.Before(series.Rows[1].Time) {
		t.Fatalf("rows not sorted: %v then %v", series.Rows[0].Time, series.Rows[1].Time)
	}
	first := series.Rows[0]
	if first.Time.Format("2006-01-02") != "2024-01-02" {
		t.Fatalf("unexpected first row time %v", first.Time)
	}
	if first.Cells[3] != nil {
		t.Fatalf("null close must stay nil, got %v", first.Cells[3])
	}
	if first.Cells[0] != 100.0 || first.Cells[4] != int64(1000) {
		t.Fatalf("unexpected cells %v", first.Cells)
	}
	if series.Rows[1].Cells[3] != 110.0 {
		t.Fatalf("unexpected close %v", series.Rows[1].Cells[3])
	}
}

func TestFetchRange(t *testing.T) {
	var gotPeriod1, gotPeriod2 string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPeriod1 = r.URL.Query().Get("period1")
		gotPeriod2 = r.URL.Query().Get("period2")
		w.Write([]byte(chartBody))
	})

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	_, err := client.FetchRange(context.Background(), "TSLA", start, end, domrepo.IntervalDaily)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPeriod1 != "1704153600" {
		t.Fatalf("unexpected period1 %q", gotPeriod1)
	}
	if gotPeriod2 != "1718496000" {
		t.Fatalf("unexpected period2 %q", gotPeriod2)
	}
}

func TestFetchChartAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	})

	_, err := client.FetchPeriod(context.Background(), "NOPE", "6mo", domrepo.IntervalDaily)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Not Found") {
		t.Fatalf("error should carry the provider code: %v", err)
	}
}

func TestFetchChartEmptyResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	})

	series, err := client.FetchPeriod(context.Background(), "TSLA", "6mo", domrepo.IntervalDaily)
	if err != nil {
		t.Fatalf("an empty window is not an error: %v", err)
	}
	if len(series.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(series.Rows))
	}
}

func TestFetchChartHTTPFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchPeriod(context.Background(), "TSLA", "6mo", domrepo.IntervalDaily)
	if err == nil {
		t.Fatalf("expected error for a 502 response")
	}
}
