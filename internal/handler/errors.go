package handler

import (
	"crimson-store/internal/service"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// toHTTPError turns service failures into the status the page alerts on.
// Anything unrecognised falls through to echo's 500 handling.
func toHTTPError(err error) error {
	var fe *service.FieldError
	switch {
	case errors.As(err, &fe):
		return echo.NewHTTPError(http.StatusBadRequest, fe.Message)
	case errors.Is(err, service.ErrInvalidAdminPassword):
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect password.")
	case errors.Is(err, service.ErrAdminRequired):
		return echo.NewHTTPError(http.StatusForbidden, "Admin access required.")
	case errors.Is(err, service.ErrUnknownItem):
		return echo.NewHTTPError(http.StatusNotFound, "Item not found.")
	case errors.Is(err, service.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Order not found.")
	case errors.Is(err, service.ErrNoPurchaseInProgress):
		return echo.NewHTTPError(http.StatusConflict, "Choose an item to purchase first.")
	case errors.Is(err, service.ErrNotRegistering):
		return echo.NewHTTPError(http.StatusConflict, "Log in with your email before registering.")
	}
	return err
}
