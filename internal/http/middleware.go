package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"yatra/backend/pkg/logger"
)

// NoStoreMiddleware marks responses uncacheable. Every /api answer is either
// personal or rate-limit sensitive; a shared cache must never serve one.
func NoStoreMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Cache-Control", "no-store")
			return next(c)
		}
	}
}

// RequestLoggerMiddleware logs one line per request with method, path,
// status and latency.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			args := []any{
				"module", "http",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
			}
			switch {
			case status >= 500:
				logger.Error("request failed", args...)
			case status >= 400:
				logger.Warn("request rejected", args...)
			default:
				logger.Debug("request served", args...)
			}
			return nil
		}
	}
}
