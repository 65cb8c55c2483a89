package normalize

import (
	"strings"
	"unicode"

	"github.com/Dhruvg12/financial-app/internal/domain/models"
)

// Kind discriminates how a provider labelled a column. Providers switch
// between a plain metric name, a symbol-decorated name such as "Close_TSLA",
// and a two-level (metric, symbol) pair depending on the request shape.
type Kind int

const (
	Plain Kind = iota
	Decorated
	TwoLevel
)

// Column is a raw label resolved once into its metric name. Tag carries the
// discarded symbol portion for Decorated and TwoLevel labels.
type Column struct {
	Kind   Kind
	Metric string
	Tag    string
}

// ParseColumn classifies a raw provider label and resolves its canonical
// metric name. Resolution is idempotent: an already-canonical name parses as
// Plain and keeps its spelling.
func ParseColumn(l models.Label) Column {
	if l.Sub != "" {
		return Column{Kind: TwoLevel, Metric: canonicalName(l.Name), Tag: l.Sub}
	}
	name := strings.TrimRight(l.Name, "_")
	if metric, tag, ok := splitDecoration(name); ok {
		return Column{Kind: Decorated, Metric: canonicalName(metric), Tag: tag}
	}
	return Column{Kind: Plain, Metric: canonicalName(name)}
}

// splitDecoration strips a trailing dash/underscore-delimited segment when it
// is all-uppercase, treating it as a redundant symbol tag rather than part of
// the metric name.
func splitDecoration(name string) (metric, tag string, ok bool) {
	idx := strings.LastIndexAny(name, "_-")
	if idx <= 0 || idx == len(name)-1 {
		return "", "", false
	}
	tail := name[idx+1:]
	if !isUpperTag(tail) {
		return "", "", false
	}
	return name[:idx], tail, true
}

// isUpperTag reports whether s reads as a symbol tag: at least one uppercase
// letter and no lowercase ones. Digits are allowed ("BRK4", "TSLA").
func isUpperTag(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// canonicalName maps any timestamp-flavoured metric name onto "Date". The
// match is case-sensitive on purpose: providers spell the index column
// "Date", "Datetime" or a decorated variant of those.
func canonicalName(name string) string {
	if strings.Contains(name, "Date") || name == "Datetime" {
		return "Date"
	}
	return name
}
