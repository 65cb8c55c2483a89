package models

// Requests for the market and auth HTTP endpoints. Defined in domain for
// consistency and reuse.

type StockRequest struct {
	Symbol   string `param:"symbol" json:"symbol" validate:"required"`
	Period   string `query:"period" json:"period" default:"6mo"`
	Interval string `query:"interval" json:"interval" default:"1d"`
}

type InvestmentRequest struct {
	Symbol string  `query:"symbol" json:"symbol" validate:"required"`
	Amount float64 `query:"amount" json:"amount" validate:"required"`
	Date   string  `query:"date" json:"date" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" form:"password" validate:"required,min=1,max=128"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}
