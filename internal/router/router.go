package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ndc-seat-availability/internal/handler"
)

// RegisterRoutes registers the unauthenticated health checks.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.AppHealth)
	e.GET("/healthz", handler.Health)
}
