package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ndc-seat-availability/internal/handler"
	"github.com/iliyamo/ndc-seat-availability/internal/middleware"
)

// NDCOptions carries the optional middleware of the /ndc/v1 group.
type NDCOptions struct {
	JWTSecret string // empty leaves the routes open
	Roles     []string
	RateLimit echo.MiddlewareFunc
	Cache     echo.MiddlewareFunc
}

// RegisterNDC registers the seat availability route under /ndc/v1/sc. The
// route answers both GET and POST with a JSON body. Audit lookups are
// registered only when audit is non-nil.
func RegisterNDC(e *echo.Echo, h *handler.SeatAvailabilityHandler, audit *handler.AuditHandler, opts NDCOptions) {
	var mw []echo.MiddlewareFunc
	if opts.JWTSecret != "" {
		mw = append(mw, middleware.JWTAuth(opts.JWTSecret), middleware.RequireRole(opts.Roles...))
	}
	g := e.Group("/ndc/v1/sc", mw...)

	// limiter runs before the cache so replays also count against the budget
	var seatMW []echo.MiddlewareFunc
	if opts.RateLimit != nil {
		seatMW = append(seatMW, opts.RateLimit)
	}
	if opts.Cache != nil {
		seatMW = append(seatMW, opts.Cache)
	}
	g.Match([]string{http.MethodGet, http.MethodPost}, "/seat_availability", h.Handle, seatMW...)

	if audit != nil {
		g.GET("/seat_availability/audit", audit.List)
		g.GET("/seat_availability/audit/:request_id", audit.Get)
	}
}
