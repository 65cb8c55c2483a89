package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes the payload as-is with status 200. Endpoint bodies
// are bare JSON values, not an envelope; error bodies carry a stable code.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// CreatedResponse writes the payload with status 201.
func CreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContentResponse writes no content response.
func NoContentResponse(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// BadRequestResponse writes validation failures collected by request
// binding.
func BadRequestResponse(c echo.Context, errs interface{}) error {
	return c.JSON(http.StatusBadRequest, ValidationFailure{Errors: errs})
}

// ErrorResponse writes an AppError with its HTTP status. Anything that is
// not an AppError becomes an opaque 500.
func ErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, appErr)
	}
	return c.JSON(http.StatusInternalServerError, InternalError("something went wrong"))
}
