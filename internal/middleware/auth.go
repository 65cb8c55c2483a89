package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Dhruvg12/financial-app/internal/service/auth"
	xhttp "github.com/Dhruvg12/financial-app/pkg/http"
)

// UserContextKey is where the authenticated user is stored on the request
// context.
const UserContextKey = "user"

// BearerAuth guards routes behind a valid bearer token. The resolved user is
// attached to the echo context; downstream handlers take no dependency on it
// beyond its presence.
func BearerAuth(svc *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return unauthorized(c)
			}
			user, err := svc.Authenticate(c.Request().Context(), strings.TrimPrefix(header, prefix))
			if err != nil {
				return unauthorized(c)
			}
			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return xhttp.ErrorResponse(c, xhttp.UnauthorizedError("could not validate credentials"))
}
