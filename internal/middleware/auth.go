package middleware

import (
	"crimson-store/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly lets the request through only while the admin flag is set.
// The flag is the shared-secret gate, not real authentication.
func AdminOnly(storeService service.StoreService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, err := storeService.IsAdmin(c.Request().Context())
			if err != nil {
				return err
			}
			if !admin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required.")
			}
			return next(c)
		}
	}
}
