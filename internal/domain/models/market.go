package models

import "time"

// Label is a raw provider column label. Name is the flat spelling, which may
// carry a symbol decoration such as "Close_TSLA". Sub is set when the
// provider returns two-level (metric, symbol) pairs for single-symbol
// requests; it is empty otherwise.
type Label struct {
	Name string
	Sub  string
}

// RawRow is one time-indexed row of a provider series. Cells are positional
// and aligned with RawSeries.Columns; values are provider-typed and may be
// nil for missing trading days or data gaps.
type RawRow struct {
	Time  time.Time
	Cells []interface{}
}

// RawSeries is an ordered provider time series for one symbol. Rows are
// strictly ascending by time with no duplicate timestamps.
type RawSeries struct {
	Columns []Label
	Rows    []RawRow
}

// Record is one canonical trading-period row. The field set is fixed to Date
// plus OHLCV regardless of how the provider labelled its columns. Date is
// always present; the metric fields hold a JSON-safe coerced value (float64,
// int64, string, flat list) or nil.
type Record struct {
	Date   string      `json:"Date"`
	Open   interface{} `json:"Open"`
	High   interface{} `json:"High"`
	Low    interface{} `json:"Low"`
	Close  interface{} `json:"Close"`
	Volume interface{} `json:"Volume"`
}

// SimulationPoint is one day of a lump-sum valuation series.
type SimulationPoint struct {
	Date  string  `json:"Date"`
	Price float64 `json:"Price"`
	Value float64 `json:"Value"`
}

// SimulationResult summarises a buy-once growth trajectory. PurchaseDate is
// the actual first trading day used, which may be later than the requested
// date when the market was closed.
type SimulationResult struct {
	Symbol        string            `json:"symbol"`
	Amount        float64           `json:"amount"`
	PurchaseDate  string            `json:"purchase_date"`
	PurchasePrice float64           `json:"purchase_price"`
	Shares        float64           `json:"shares"`
	CurrentPrice  float64           `json:"current_price"`
	ValueNow      float64           `json:"value_now"`
	GainPct       float64           `json:"gain_pct"`
	Series        []SimulationPoint `json:"series"`
}
