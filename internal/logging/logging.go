package logging

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID carries the correlation id in and out of the service.
const HeaderRequestID = "X-Request-ID"

// ContextKeyRequestID is where RequestID stores the id on the echo context.
const ContextKeyRequestID = "request_id"

func init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)
}

// LogKV logs a structured JSON line with a level, message, and arbitrary fields.
func LogKV(level, msg string, fields map[string]interface{}) {
	entry := map[string]interface{}{
		"level": level,
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"msg":   msg,
	}
	for k, v := range fields {
		entry[k] = v
	}
	b, _ := json.Marshal(entry)
	log.Println(string(b))
}

// RequestID reuses an inbound X-Request-ID or assigns a new UUID, and
// echoes it on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(ContextKeyRequestID, id)
			c.Response().Header().Set(HeaderRequestID, id)
			return next(c)
		}
	}
}

// RequestIDFrom returns the id stored by RequestID, or "" outside it.
func RequestIDFrom(c echo.Context) string {
	id, _ := c.Get(ContextKeyRequestID).(string)
	return id
}

// JSONLogger returns an echo middleware that logs requests as single-line JSON.
func JSONLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			level := "info"
			if status >= http.StatusInternalServerError || err != nil {
				level = "error"
			}
			fields := map[string]interface{}{
				"method":     req.Method,
				"path":       req.URL.Path,
				"query":      req.URL.RawQuery,
				"status":     status,
				"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
				"client_ip":  c.RealIP(),
				"user_agent": req.UserAgent(),
				"bytes_in":   req.ContentLength,
				"bytes_out":  c.Response().Size,
				"request_id": RequestIDFrom(c),
			}
			if err != nil {
				fields["error"] = err.Error()
			}
			LogKV(level, "request", fields)
			return nil
		}
	}
}
