package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"annotate-service/app/utils/logger"
)

// RequestID takes X-Request-ID from the request or assigns a new one, and
// echoes it in the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)

			return next(c)
		}
	}
}

// RequestLogger logs one line per completed request. Health probes are
// skipped.
func RequestLogger(baseLogger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if strings.HasPrefix(req.URL.Path, "/health") {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			requestID, _ := c.Get("request_id").(string)
			log := logger.WithRequest(baseLogger, requestID, req.Method, req.URL.Path)
			ctx := req.Context()

			status := responseStatus(c, err)
			attrs := []any{
				"status", status,
				"duration_ms", duration.Milliseconds(),
				"response_size", c.Response().Size,
				"remote_addr", c.RealIP(),
			}
			if err != nil {
				attrs = append(attrs, "error", err)
			}

			log.Log(ctx, levelFor(status), "request completed", attrs...)
			return err
		}
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
