package normalize

import (
	"math"
	"time"
)

// cellTimeLayout matches the provider's stringified timestamp form,
// e.g. "2024-01-02 00:00:00".
const cellTimeLayout = "2006-01-02 15:04:05"

// Coerce maps a provider cell value onto the JSON-safe set: nil, int64,
// float64, string, or a flat []interface{}. NaN is the provider's
// missing-data marker and becomes nil. Timestamp and duration values
// stringify. Sequence-valued cells flatten to a plain list. Anything else
// passes through unchanged after a final plain-number extraction attempt.
func Coerce(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(x) {
			return nil
		}
		return x
	case float32:
		f := float64(x)
		if math.IsNaN(f) {
			return nil
		}
		return f
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case bool:
		return x
	case string:
		return x
	case time.Time:
		return x.Format(cellTimeLayout)
	case time.Duration:
		return x.String()
	case []interface{}:
		return flatten(x)
	case []float64:
		out := make([]interface{}, 0, len(x))
		for _, f := range x {
			out = append(out, Coerce(f))
		}
		return out
	case []int64:
		out := make([]interface{}, 0, len(x))
		for _, n := range x {
			out = append(out, n)
		}
		return out
	case *float64:
		if x == nil {
			return nil
		}
		return Coerce(*x)
	case *int64:
		if x == nil {
			return nil
		}
		return *x
	default:
		return x
	}
}

// flatten expands nested sequences into one plain list, coercing each
// element.
func flatten(in []interface{}) []interface{} {
	out := make([]interface{}, 0, len(in))
	for _, v := range in {
		switch nested := Coerce(v).(type) {
		case []interface{}:
			out = append(out, nested...)
		default:
			out = append(out, nested)
		}
	}
	return out
}
