package api

import (
	"errors"

	models "github.com/Dhruvg12/financial-app/internal/domain/models"
	"github.com/Dhruvg12/financial-app/internal/service/auth"
	xhttp "github.com/Dhruvg12/financial-app/pkg/http"
	xlogger "github.com/Dhruvg12/financial-app/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AuthHandler implements the open registration and login endpoints.
type AuthHandler struct {
	logger *xlogger.Logger
	auth   *auth.Service
}

func NewAuthHandler(logger *xlogger.Logger, svc *auth.Service) *AuthHandler {
	return &AuthHandler{logger: logger, auth: svc}
}

// Register mounts the auth routes onto an open group.
func (h *AuthHandler) Register(g *echo.Group) {
	g.POST("/register", h.RegisterUser)
	g.POST("/login", h.Login)
}

func (h *AuthHandler) RegisterUser(c echo.Context) error {
	req := &models.RegisterRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	token, err := h.auth.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			return xhttp.ErrorResponse(c, xhttp.BadRequestError("user already exists"))
		}
		h.logger.Error("register error", xlogger.String("username", req.Username), xlogger.Error(err))
		return xhttp.ErrorResponse(c, xhttp.InternalError("registration failed"))
	}
	return xhttp.SuccessResponse(c, token)
}

// Login accepts form-encoded credentials (OAuth2 password style) as well as
// JSON.
func (h *AuthHandler) Login(c echo.Context) error {
	req := &models.LoginRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return xhttp.ErrorResponse(c, xhttp.UnauthorizedError("invalid credentials"))
		}
		h.logger.Error("login error", xlogger.String("username", req.Username), xlogger.Error(err))
		return xhttp.ErrorResponse(c, xhttp.InternalError("login failed"))
	}
	return xhttp.SuccessResponse(c, token)
}
