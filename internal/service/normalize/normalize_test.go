package normalize

import (
	"math"
	"testing"
	"time"

	"github.com/Dhruvg12/financial-app/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeNil(t *testing.T) {
	got := Normalize(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	got := Normalize(&models.RawSeries{})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestNormalizePlainColumns(t *testing.T) {
	raw := &models.RawSeries{
		Columns: []models.Label{
			{Name: "Open"}, {Name: "High"}, {Name: "Low"}, {Name: "Close"}, {Name: "Volume"},
		},
		Rows: []models.RawRow{
			{Time: day(2024, 1, 2), Cells: []interface{}{100.0, 110.0, 95.0, 105.0, int64(12345)}},
			{Time: day(2024, 1, 3), Cells: []interface{}{105.0, 115.0, 104.0, 110.0, int64(6789)}},
		},
	}
	recs := Normalize(raw)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	r := recs[0]
	if r.Date != "2024-01-02" {
		t.Fatalf("unexpected date %q", r.Date)
	}
	if r.Open != 100.0 || r.High != 110.0 || r.Low != 95.0 || r.Close != 105.0 {
		t.Fatalf("unexpected OHLC %+v", r)
	}
	if r.Volume != int64(12345) {
		t.Fatalf("volume should stay integral, got %v (%T)", r.Volume, r.Volume)
	}
	if recs[1].Date != "2024-01-03" {
		t.Fatalf("row order not preserved: %q", recs[1].Date)
	}
}

func TestNormalizeDecoratedColumns(t *testing.T) {
	raw := &models.RawSeries{
		Columns: []models.Label{{Name: "Close_TSLA"}, {Name: "Volume_TSLA"}},
		Rows: []models.RawRow{
			{Time: day(2024, 1, 2), Cells: []interface{}{250.0, int64(1000)}},
		},
	}
	recs := Normalize(raw)
	if recs[0].Close != 250.0 || recs[0].Volume != int64(1000) {
		t.Fatalf("decorated columns not resolved: %+v", recs[0])
	}
}

func TestNormalizeTwoLevelColumns(t *testing.T) {
	raw := &models.RawSeries{
		Columns: []models.Label{
			{Name: "Close", Sub: "TSLA"}, {Name: "Open", Sub: "TSLA"},
		},
		Rows: []models.RawRow{
			{Time: day(2024, 1, 2), Cells: []interface{}{250.0, 245.0}},
		},
	}
	recs := Normalize(raw)
	if recs[0].Close != 250.0 || recs[0].Open != 245.0 {
		t.Fatalf("two-level columns not resolved: %+v", recs[0])
	}
}

func TestNormalizeDateOverride(t *testing.T) {
	// A provider Date column never wins over the row's time index.
	raw := &models.RawSeries{
		Columns: []models.Label{{Name: "Datetime"}, {Name: "Close"}},
		Rows: []models.RawRow{
			{Time: day(2024, 1, 2), Cells: []interface{}{"garbage", 105.0}},
		},
	}
	recs := Normalize(raw)
	if recs[0].Date != "2024-01-02" {
		t.Fatalf("date not derived from index: %q", recs[0].Date)
	}
	if recs[0].Close != 105.0 {
		t.Fatalf("unexpected close %v", recs[0].Close)
	}
}

func TestNormalizeMissingCells(t *testing.T) {
	raw := &models.RawSeries{
		Columns: []models.Label{{Name: "Close"}, {Name: "Volume"}},
		Rows: []models.RawRow{
			{Time: day(2024, 1, 2), Cells: []interface{}{math.NaN(), nil}},
			{Time: day(2024, 1, 3), Cells: []interface{}{110.0}},
		},
	}
	recs := Normalize(raw)
	if len(recs) != 2 {
		t.Fatalf("rows must never be dropped, got %d", len(recs))
	}
	if recs[0].Close != nil || recs[0].Volume != nil {
		t.Fatalf("NaN and nil cells must map to nil: %+v", recs[0])
	}
	if recs[1].Close != 110.0 || recs[1].Volume != nil {
		t.Fatalf("short row mishandled: %+v", recs[1])
	}
}

func TestClosePrice(t *testing.T) {
	if v, ok := ClosePrice(models.Record{Close: 105.5}); !ok || v != 105.5 {
		t.Fatalf("float close: got %v %v", v, ok)
	}
	if v, ok := ClosePrice(models.Record{Close: int64(105)}); !ok || v != 105 {
		t.Fatalf("int close: got %v %v", v, ok)
	}
	if _, ok := ClosePrice(models.Record{Close: nil}); ok {
		t.Fatalf("nil close must not resolve")
	}
	if _, ok := ClosePrice(models.Record{Close: "105"}); ok {
		t.Fatalf("string close must not resolve")
	}
}
