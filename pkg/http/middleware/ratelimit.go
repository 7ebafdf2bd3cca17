package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Allower decides whether one more request for key may proceed.
type Allower interface {
	Allow(key string) bool
}

// RateLimit rejects requests from a client IP once its bucket is empty.
// onLimit writes the rejection; nil falls back to a bare 429.
func RateLimit(limiter Allower, onLimit echo.HandlerFunc) echo.MiddlewareFunc {
	if onLimit == nil {
		onLimit = func(echo.Context) error {
			return echo.NewHTTPError(http.StatusTooManyRequests)
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return onLimit(c)
			}
			return next(c)
		}
	}
}
