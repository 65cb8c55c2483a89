package api

import (
	models "github.com/Dhruvg12/financial-app/internal/domain/models"
	"github.com/Dhruvg12/financial-app/internal/usecase"
	xhttp "github.com/Dhruvg12/financial-app/pkg/http"
	xlogger "github.com/Dhruvg12/financial-app/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketHandler implements the authenticated market-data endpoints.
type MarketHandler struct {
	logger  *xlogger.Logger
	history *usecase.HistoryUseCase
	sim     *usecase.SimulationUseCase
}

func NewMarketHandler(logger *xlogger.Logger, history *usecase.HistoryUseCase, sim *usecase.SimulationUseCase) *MarketHandler {
	return &MarketHandler{logger: logger, history: history, sim: sim}
}

// Register mounts the market routes onto an (already guarded) group.
func (h *MarketHandler) Register(g *echo.Group) {
	g.GET("/stock/:symbol", h.Stock)
	g.GET("/investment", h.Investment)
}

// Stock returns the normalized OHLCV history for one symbol as a bare JSON
// array of records.
func (h *MarketHandler) Stock(c echo.Context) error {
	req := &models.StockRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	records, err := h.history.GetHistory(c.Request().Context(), req.Symbol, req.Period, req.Interval)
	if err != nil {
		h.logger.Error("stock usecase error", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.ErrorResponse(c, mapDomainError(err))
	}
	return xhttp.SuccessResponse(c, records)
}

// Investment runs the lump-sum growth simulation and returns its result as a
// bare JSON object.
func (h *MarketHandler) Investment(c echo.Context) error {
	req := &models.InvestmentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.sim.Simulate(c.Request().Context(), req.Symbol, req.Amount, req.Date)
	if err != nil {
		h.logger.Error("investment usecase error", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.ErrorResponse(c, mapDomainError(err))
	}
	return xhttp.SuccessResponse(c, result)
}
