package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs every HTTP request on completion.
// It also stores a request-scoped logger, tagged with the request ID, in the
// request's context.Context so downstream stages log with the same id.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := GetRequestID(c)

			req := c.Request()
			scoped := logger.WithRequestID(log, reqID)
			c.SetRequest(req.WithContext(logger.IntoContext(req.Context(), scoped)))

			if err := next(c); err != nil {
				// Let Echo's error handler write the response before we read the status
				c.Error(err)
			}

			res := c.Response()
			status := res.Status

			var event *zerolog.Event
			switch {
			case status >= 500:
				event = scoped.Error()
			case status >= 400:
				event = scoped.Warn()
			default:
				event = scoped.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
