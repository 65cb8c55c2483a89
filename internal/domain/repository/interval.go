package repository

// Interval is a sampling interval code accepted by the provider gateway.
type Interval string

const (
	IntervalDaily  Interval = "1d"
	IntervalWeekly Interval = "1wk"
)

// IsValidInterval returns true if iv is a supported interval.
func IsValidInterval(iv Interval) bool {
	switch iv {
	case IntervalDaily, IntervalWeekly:
		return true
	default:
		return false
	}
}

// DefaultInterval returns the default interval.
func DefaultInterval() Interval { return IntervalDaily }

// ParseInterval converts a raw string to a valid interval. An unknown code
// is rejected rather than defaulted: callers must refuse the request before
// any fetch happens.
func ParseInterval(s string) (Interval, bool) {
	if s == "" {
		return DefaultInterval(), true
	}
	iv := Interval(s)
	if IsValidInterval(iv) {
		return iv, true
	}
	return "", false
}
