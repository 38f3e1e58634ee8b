package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"annotate-service/app/utils/metrics"
)

// Metrics records count and latency of every request by method, route
// pattern and status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordRequest(
				c.Request().Method,
				route,
				strconv.Itoa(responseStatus(c, err)),
				time.Since(start).Seconds(),
			)
			return err
		}
	}
}
