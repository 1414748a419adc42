package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// Deadline returns middleware that bounds the request context by d.
// Handlers keep running after the deadline; they observe it through ctx.Err().
func Deadline(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if d <= 0 {
				return next(c)
			}
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
