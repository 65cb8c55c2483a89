package usecase

import (
	"context"
	"time"

	"github.com/Dhruvg12/financial-app/internal/domain/models"
	domrepo "github.com/Dhruvg12/financial-app/internal/domain/repository"
	"github.com/Dhruvg12/financial-app/internal/service/normalize"
)

const defaultPeriod = "6mo"

// HistoryUseCase serves normalized OHLCV history for one symbol. Each call is
// stateless: a fresh provider fetch, reshaped and discarded after the
// response is serialized.
type HistoryUseCase struct {
	provider domrepo.History
	metrics  domrepo.Metrics
}

func NewHistoryUseCase(provider domrepo.History, metrics domrepo.Metrics) *HistoryUseCase {
	return &HistoryUseCase{provider: provider, metrics: metrics}
}

// GetHistory fetches the series for symbol over a relative period and
// normalizes it into canonical records. An unknown interval code is rejected
// before any fetch happens; a provider failure surfaces as a RetrievalError
// with the cause attached, never retried here.
func (uc *HistoryUseCase) GetHistory(ctx context.Context, symbol, period, interval string) ([]models.Record, error) {
	if symbol == "" {
		return nil, models.NewValidationError("symbol", "symbol is required")
	}
	iv, ok := domrepo.ParseInterval(interval)
	if !ok {
		return nil, models.NewValidationError("interval", "invalid interval; allowed: 1d, 1wk")
	}
	if period == "" {
		period = defaultPeriod
	}

	start := time.Now()
	raw, err := uc.provider.FetchPeriod(ctx, symbol, period, iv)
	uc.metrics.RecordProviderLatency("fetch_period", time.Since(start).Seconds())
	if err != nil {
		uc.metrics.RecordError("provider")
		return nil, &models.RetrievalError{Err: err}
	}

	return normalize.Normalize(raw), nil
}
