package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dhruvg12/financial-app/internal/domain/models"
	domrepo "github.com/Dhruvg12/financial-app/internal/domain/repository"
)

type fakeProvider struct {
	series *models.RawSeries
	err    error

	calls        int
	lastSymbol   string
	lastPeriod   string
	lastStart    time.Time
	lastEnd      time.Time
	lastInterval domrepo.Interval
}

func (f *fakeProvider) FetchPeriod(_ context.Context, symbol, period string, interval domrepo.Interval) (*models.RawSeries, error) {
	f.calls++
	f.lastSymbol = symbol
	f.lastPeriod = period
	f.lastInterval = interval
	return f.series, f.err
}

func (f *fakeProvider) FetchRange(_ context.Context, symbol string, start, end time.Time, interval domrepo.Interval) (*models.RawSeries, error) {
	f.calls++
	f.lastSymbol = symbol
	f.lastStart = start
	f.lastEnd = end
	f.lastInterval = interval
	return f.series, f.err
}

type nopMetrics struct{}

func (nopMetrics) RecordError(string) {}

func (nopMetrics) RecordProviderLatency(string, float64) {}

func (nopMetrics) RecordLastPrice(string, float64) {}

type pricePoint struct {
	day   time.Time
	close interface{}
}

func point(y int, m time.Month, d int, close interface{}) pricePoint {
	return pricePoint{day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), close: close}
}

func dailySeries(points ...pricePoint) *models.RawSeries {
	s := &models.RawSeries{Columns: []models.Label{{Name: "Close"}}}
	for _, p := range points {
		s.Rows = append(s.Rows, models.RawRow{Time: p.day, Cells: []interface{}{p.close}})
	}
	return s
}

func newSimUseCase(p *fakeProvider, now time.Time) *SimulationUseCase {
	uc := NewSimulationUseCase(p, nopMetrics{})
	uc.now = func() time.Time { return now }
	return uc
}

func TestSimulateGrowth(t *testing.T) {
	p := &fakeProvider{series: dailySeries(
		point(2024, 1, 2, 100.0),
		point(2024, 1, 3, 110.0),
	)}
	uc := newSimUseCase(p, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	res, err := uc.Simulate(context.Background(), "ABC", 1000, "2024-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PurchasePrice != 100 || res.Shares != 10 {
		t.Fatalf("unexpected purchase: price=%v shares=%v", res.PurchasePrice, res.Shares)
	}
	if res.CurrentPrice != 110 || res.ValueNow != 1100 {
		t.Fatalf("unexpected valuation: %v @ %v", res.ValueNow, res.CurrentPrice)
	}
	if res.GainPct != 10.0 {
		t.Fatalf("unexpected gain %v", res.GainPct)
	}
	if len(res.Series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(res.Series))
	}
	if res.Series[0].Value != 1000 || res.Series[1].Value != 1100 {
		t.Fatalf("unexpected series values: %+v", res.Series)
	}
	if res.PurchaseDate != "2024-01-02" {
		t.Fatalf("unexpected purchase date %q", res.PurchaseDate)
	}
}

func TestSimulateFetchWindow(t *testing.T) {
	p := &fakeProvider{series: dailySeries(point(2024, 1, 2, 100.0))}
	now := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)
	uc := newSimUseCase(p, now)

	if _, err := uc.Simulate(context.Background(), "ABC", 500, "2024-01-02"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	if !p.lastStart.Equal(wantStart) || !p.lastEnd.Equal(wantEnd) {
		t.Fatalf("fetched [%v, %v)", p.lastStart, p.lastEnd)
	}
	if p.lastInterval != domrepo.IntervalDaily {
		t.Fatalf("expected daily interval, got %v", p.lastInterval)
	}
}

func TestSimulateValidation(t *testing.T) {
	cases := []struct {
		name   string
		symbol string
		amount float64
		date   string
		field  string
	}{
		{"empty symbol", "", 1000, "2024-01-02", "symbol"},
		{"zero amount", "ABC", 0, "2024-01-02", "amount"},
		{"negative amount", "ABC", -5, "2024-01-02", "amount"},
		{"bad date", "ABC", 1000, "02/01/2024", "date"},
		{"today", "ABC", 1000, "2024-06-15", "date"},
		{"future", "ABC", 1000, "2025-01-01", "date"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &fakeProvider{series: dailySeries(point(2024, 1, 2, 100.0))}
			uc := newSimUseCase(p, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

			_, err := uc.Simulate(context.Background(), c.symbol, c.amount, c.date)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != c.field {
				t.Fatalf("expected field %q, got %q", c.field, verr.Field)
			}
			if p.calls != 0 {
				t.Fatalf("provider must not be called, got %d calls", p.calls)
			}
		})
	}
}

func TestSimulateNoData(t *testing.T) {
	p := &fakeProvider{series: &models.RawSeries{}}
	uc := newSimUseCase(p, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	_, err := uc.Simulate(context.Background(), "ABC", 1000, "2024-01-02")
	if !errors.Is(err, models.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestSimulateProviderFailure(t *testing.T) {
	cause := errors.New("connection reset")
	p := &fakeProvider{err: cause}
	uc := newSimUseCase(p, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	_, err := uc.Simulate(context.Background(), "ABC", 1000, "2024-01-02")
	var rerr *models.RetrievalError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RetrievalError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not preserved: %v", err)
	}
}

func TestSimulateZeroPrice(t *testing.T) {
	p := &fakeProvider{series: dailySeries(point(2024, 1, 2, 0.0))}
	uc := newSimUseCase(p, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	_, err := uc.Simulate(context.Background(), "ABC", 1000, "2024-01-02")
	if !errors.Is(err, models.ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent, got %v", err)
	}
}

func TestSimulateMissingClose(t *testing.T) {
	p := &fakeProvider{series: dailySeries(
		point(2024, 1, 2, 100.0),
		point(2024, 1, 3, nil),
	)}
	uc := newSimUseCase(p, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	_, err := uc.Simulate(context.Background(), "ABC", 1000, "2024-01-03")
	if !errors.Is(err, models.ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent, got %v", err)
	}
}

func TestSimulateDeferredPurchaseDate(t *testing.T) {
	// Requesting a non-trading day defers the purchase to the first trading
	// day in the window, echoed back as the purchase date.
	p := &fakeProvider{series: dailySeries(
		point(2024, 1, 2, 100.0),
		point(2024, 1, 3, 105.0),
	)}
	uc := newSimUseCase(p, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	res, err := uc.Simulate(context.Background(), "ABC", 1000, "2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PurchaseDate != "2024-01-02" {
		t.Fatalf("expected deferred purchase date, got %q", res.PurchaseDate)
	}
	if res.PurchasePrice != 100 {
		t.Fatalf("unexpected purchase price %v", res.PurchasePrice)
	}
}

func TestSimulateIntegralClose(t *testing.T) {
	p := &fakeProvider{series: dailySeries(point(2024, 1, 2, int64(50)))}
	uc := newSimUseCase(p, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	res, err := uc.Simulate(context.Background(), "ABC", 100, "2024-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Shares != 2 || res.ValueNow != 100 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
