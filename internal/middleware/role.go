package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
)

// RequireRole aborts with 403 unless the role stored by JWTAuth is one of
// roles. With no roles given every authenticated caller passes.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, model.ErrorResponse{StatusCode: http.StatusForbidden, ErrMsg: "Forbidden."})
			}
			return next(c)
		}
	}
}
