package middleware

import "github.com/labstack/echo/v4"

// userID returns the caller id stored by JWTAuth, or "anon" when the
// route is unauthenticated.
func userID(c echo.Context) string {
	for _, key := range []string{"user_id", "userID"} {
		if s, ok := c.Get(key).(string); ok && s != "" {
			return s
		}
	}
	return "anon"
}
