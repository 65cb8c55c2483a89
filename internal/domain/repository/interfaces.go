package repository

import (
	"context"
	"time"

	"github.com/Dhruvg12/financial-app/internal/domain/models"
)

// History is the provider gateway for raw historical price series. Calls are
// synchronous with no internal retry; a transient failure fails the request.
type History interface {
	// FetchPeriod requests a relative window, e.g. "6mo" or "1y".
	FetchPeriod(ctx context.Context, symbol, period string, interval Interval) (*models.RawSeries, error)
	// FetchRange requests the half-open window [start, end).
	FetchRange(ctx context.Context, symbol string, start, end time.Time, interval Interval) (*models.RawSeries, error)
}

// UserStore persists registered accounts.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	// FindByUsername returns (nil, nil) when no such user exists.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Close() error
}

type Metrics interface {
	RecordError(kind string)
	RecordProviderLatency(op string, seconds float64)
	RecordLastPrice(symbol string, price float64)
}
