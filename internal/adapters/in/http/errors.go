package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// failure maps application and domain errors onto HTTP status codes.
// Validation failures are the caller's fault, state conflicts mean the
// request raced or repeated, and anything unrecognized is a 500.
func failure(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrDuplicateDelivery),
		errors.Is(err, commands.ErrRestaurantInactive),
		errors.Is(err, commands.ErrMenuItemUnavailable):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
