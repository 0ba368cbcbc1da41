package middleware

import (
	"context"

	"tradeRouter/business/router"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware tags every request with a trace id so decisions and
// feedback can be correlated across logs and the reward event table.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get("X-Trace-Id")
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), router.TraceIDKey, tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-Id", tid)

			return next(c)
		}
	}
}
