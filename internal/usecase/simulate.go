package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Dhruvg12/financial-app/internal/domain/models"
	domrepo "github.com/Dhruvg12/financial-app/internal/domain/repository"
	"github.com/Dhruvg12/financial-app/internal/service/normalize"
	"github.com/Dhruvg12/financial-app/pkg/util"
)

// SimulationUseCase computes a buy-once growth trajectory: shares purchased
// on a historical date, valued forward day by day to the present.
type SimulationUseCase struct {
	provider domrepo.History
	metrics  domrepo.Metrics
	now      func() time.Time
}

func NewSimulationUseCase(provider domrepo.History, metrics domrepo.Metrics) *SimulationUseCase {
	return &SimulationUseCase{provider: provider, metrics: metrics, now: time.Now}
}

// Simulate validates the request, fetches the daily series over
// [purchase date, today+1), and derives the valuation series and summary.
// Validation is checked in order; the first failure wins and no provider
// call is made. If the requested date is a non-trading day the purchase is
// implicitly deferred to the first available trading day, echoed back as
// purchase_date.
func (uc *SimulationUseCase) Simulate(ctx context.Context, symbol string, amount float64, date string) (*models.SimulationResult, error) {
	if symbol == "" {
		return nil, models.NewValidationError("symbol", "symbol is required")
	}
	if amount <= 0 {
		return nil, models.NewValidationError("amount", "amount must be positive")
	}
	purchase, ok := util.ParseDay(date)
	if !ok {
		return nil, models.NewValidationError("date", "date must be a valid YYYY-MM-DD date")
	}
	today := util.Today(uc.now())
	if !purchase.Before(today) {
		return nil, models.NewValidationError("date", "date must be in the past")
	}

	start := time.Now()
	raw, err := uc.provider.FetchRange(ctx, symbol, purchase, today.AddDate(0, 0, 1), domrepo.IntervalDaily)
	uc.metrics.RecordProviderLatency("fetch_range", time.Since(start).Seconds())
	if err != nil {
		uc.metrics.RecordError("provider")
		return nil, &models.RetrievalError{Err: err}
	}

	records := normalize.Normalize(raw)
	if len(records) == 0 {
		return nil, models.ErrNoData
	}

	price, ok := normalize.ClosePrice(records[0])
	if !ok {
		uc.metrics.RecordError("consistency")
		return nil, fmt.Errorf("no close price on %s: %w", records[0].Date, models.ErrInconsistent)
	}
	shares := amount / price
	if price <= 0 || !util.IsFinite(shares) {
		uc.metrics.RecordError("consistency")
		return nil, fmt.Errorf("purchase price %v on %s: %w", price, records[0].Date, models.ErrInconsistent)
	}

	series := make([]models.SimulationPoint, 0, len(records))
	for _, rec := range records {
		px, ok := normalize.ClosePrice(rec)
		if !ok {
			uc.metrics.RecordError("consistency")
			return nil, fmt.Errorf("no close price on %s: %w", rec.Date, models.ErrInconsistent)
		}
		series = append(series, models.SimulationPoint{
			Date:  rec.Date,
			Price: px,
			Value: util.Round(shares*px, 4),
		})
	}

	last := series[len(series)-1]
	uc.metrics.RecordLastPrice(symbol, last.Price)

	return &models.SimulationResult{
		Symbol:        symbol,
		Amount:        amount,
		PurchaseDate:  records[0].Date,
		PurchasePrice: price,
		Shares:        shares,
		CurrentPrice:  last.Price,
		ValueNow:      last.Value,
		GainPct:       util.Round((last.Value-amount)/amount*100, 2),
		Series:        series,
	}, nil
}
