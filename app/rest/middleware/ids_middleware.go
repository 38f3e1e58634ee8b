package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "annotate-service/app/utils/errors"
	"annotate-service/app/utils/security"
)

// IntrusionDetection rejects scanner traffic and IPs that crossed the block
// threshold with 403.
func IntrusionDetection(ids *security.IntrusionDetectionSystem) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ip := c.RealIP()

			if ids.IsBlocked(ip) || !ids.AnalyzeRequest(ip, req.UserAgent(), req.URL.Path, req.URL.RawQuery) {
				appErr := apperrors.New(apperrors.ErrCodeForbidden, "Request blocked")
				return c.JSON(appErr.StatusCode, map[string]interface{}{
					"error": appErr.Message,
					"code":  appErr.Code,
				})
			}

			return next(c)
		}
	}
}
