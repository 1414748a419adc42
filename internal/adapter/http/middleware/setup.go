package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log line carries the id
//  2. RequestLogger, which also seeds the request context logger
//  3. Recover, which wraps the handlers
//
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	for _, m := range Chain(log) {
		e.Use(m)
	}
}

// Chain returns all middleware as a slice for use with route groups.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
