package normalize

import (
	"github.com/Dhruvg12/financial-app/internal/domain/models"
)

// DateLayout is the stable date format of every canonical record.
const DateLayout = "2006-01-02"

// Normalize reshapes a raw provider series into canonical OHLCV records.
// Column labels are resolved once up front; every cell is coerced to a
// JSON-safe value. The Date field is re-derived from the row's time index,
// overriding any same-named column, so the output format is stable no matter
// how the provider represents timestamps. Row order is preserved and no rows
// are dropped or added; an empty series yields an empty slice.
func Normalize(raw *models.RawSeries) []models.Record {
	if raw == nil {
		return []models.Record{}
	}

	cols := make([]Column, len(raw.Columns))
	for i, l := range raw.Columns {
		cols[i] = ParseColumn(l)
	}

	records := make([]models.Record, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		rec := models.Record{Date: row.Time.Format(DateLayout)}
		for i, col := range cols {
			if i >= len(row.Cells) {
				break
			}
			v := Coerce(row.Cells[i])
			switch col.Metric {
			case "Open":
				rec.Open = v
			case "High":
				rec.High = v
			case "Low":
				rec.Low = v
			case "Close":
				rec.Close = v
			case "Volume":
				rec.Volume = v
			case "Date":
				// overridden by the derived date above
			}
		}
		records = append(records, rec)
	}
	return records
}

// ClosePrice extracts the close of a canonical record as a float, if the
// coerced value is numeric.
func ClosePrice(r models.Record) (float64, bool) {
	switch v := r.Close.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
