package handlers

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"

	"annotate-service/app/domain"
	apperrors "annotate-service/app/utils/errors"
)

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// FormErrorResponse is returned when a submission is rejected. Form holds
// the input as received together with the field errors.
type FormErrorResponse struct {
	Error string                `json:"error"`
	Code  string                `json:"code"`
	Form  domain.AnnotationForm `json:"form"`
}

// toAppError maps domain and pipeline errors onto application error codes.
func toAppError(err error) *apperrors.AppError {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}

	var enrichErr *domain.EnrichmentError
	var indexErr *domain.SearchIndexError

	switch {
	case errors.Is(err, domain.ErrAnnotationNotFound):
		return apperrors.Wrap(apperrors.ErrCodeAnnotationNotFound, "annotation not found", err)
	case errors.Is(err, domain.ErrMissingURI):
		return apperrors.NewMissingField("uri").WithCause(err)
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return apperrors.Wrap(apperrors.ErrCodeUnsupportedFormat, "unsupported export format", err).WithDetails(err.Error())
	case errors.As(err, &enrichErr):
		return apperrors.NewEnrichmentError(err)
	case errors.As(err, &indexErr):
		return apperrors.Wrap(apperrors.ErrCodeSearchIndexUnavailable, "search index unavailable", err)
	default:
		return apperrors.NewInternalError(err)
	}
}

// handleError writes err as an ErrorResponse. Server errors are logged.
func handleError(c echo.Context, logger *slog.Logger, err error) error {
	appErr := toAppError(err)

	if appErr.StatusCode >= 500 {
		logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"code", appErr.Code,
			"error", err)
	}

	return c.JSON(appErr.StatusCode, ErrorResponse{
		Error:   appErr.Message,
		Code:    string(appErr.Code),
		Details: appErr.Details,
	})
}

// badRequest answers 400 with the given code.
func badRequest(c echo.Context, code apperrors.ErrorCode, message string) error {
	appErr := apperrors.New(code, message)
	return c.JSON(appErr.StatusCode, ErrorResponse{
		Error: appErr.Message,
		Code:  string(appErr.Code),
	})
}
