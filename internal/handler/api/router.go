package api

import (
	"github.com/labstack/echo/v4"
)

// Router wires the open and guarded route groups under /api.
type Router struct {
	market *MarketHandler
	auth   *AuthHandler
	guard  echo.MiddlewareFunc
}

func NewRouter(market *MarketHandler, auth *AuthHandler, guard echo.MiddlewareFunc) *Router {
	return &Router{market: market, auth: auth, guard: guard}
}

// RegisterRoutes implements pkg/http.Handler. Market routes require a valid
// bearer token; register and login stay open.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	open := e.Group("/api")
	r.auth.Register(open)

	guarded := e.Group("/api", r.guard)
	r.market.Register(guarded)
}
