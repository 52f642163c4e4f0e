package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the plain liveness probe used by load balancers.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// AppHealth answers GET /health with the JSON message API clients expect.
func AppHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "App health is ok."})
}
