package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"docvault/internal/logger"
)

// Logger is a middleware that writes one access log entry per request with
// request_id, method, path, status and latency (milliseconds, float).
// request_id is taken from the locals set by RequestID, so register RequestID first.
// Sampled requests also carry trace_id.
func Logger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid := RequestIDFrom(c)
		status := responseStatus(c, err)
		latency := float64(time.Since(start).Microseconds()) / 1000

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.IsValid() {
			ev = ev.Str("trace_id", sc.TraceID().String())
		}
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", latency).
			Msg("http_request")

		return err
	}
}

// LoggerWithWriter is Logger over a fresh JSON logger writing to w.
func LoggerWithWriter(w io.Writer, level string) fiber.Handler {
	return Logger(logger.New(w, level))
}

// responseStatus is the status the client will see. A returned error has not been
// rendered by the error handler yet, so its code wins.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if fiberErr, ok := err.(*fiber.Error); ok {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
