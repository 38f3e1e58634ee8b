package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"

	"annotate-service/app/domain"
	"annotate-service/app/port"
	apperrors "annotate-service/app/utils/errors"
)

const invalidValueMessage = "has an invalid value"

// AnnotationHandler handles annotation HTTP requests
type AnnotationHandler struct {
	usecase port.AnnotationUsecase
	decoder *schema.Decoder
	logger  *slog.Logger
}

// NewAnnotationHandler creates a new annotation handler
func NewAnnotationHandler(usecase port.AnnotationUsecase, logger *slog.Logger) *AnnotationHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &AnnotationHandler{
		usecase: usecase,
		decoder: decoder,
		logger:  logger.With("component", "annotation_handler"),
	}
}

// List returns a page of annotations.
// GET /v1/annotations?limit=&offset=
func (h *AnnotationHandler) List(c echo.Context) error {
	limit, err := optionalInt(c.QueryParam("limit"))
	if err != nil {
		return badRequest(c, apperrors.ErrCodeInvalidInput, "limit must be a number")
	}
	offset, err := optionalInt(c.QueryParam("offset"))
	if err != nil {
		return badRequest(c, apperrors.ErrCodeInvalidInput, "offset must be a number")
	}

	page, err := h.usecase.List(c.Request().Context(), limit, offset)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Get returns one annotation.
// GET /v1/annotations/:id
func (h *AnnotationHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, apperrors.ErrCodeInvalidInput, "invalid annotation id")
	}

	annotation, err := h.usecase.Get(c.Request().Context(), id)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, annotation)
}

// NewForm returns the create form, pre-filled with the uri query parameter.
// GET /v1/annotations/new?uri=
func (h *AnnotationHandler) NewForm(c echo.Context) error {
	form, err := h.usecase.NewForm(c.Request().Context(), c.QueryParam("uri"))
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, form)
}

// EditForm returns the form for a stored annotation.
// GET /v1/annotations/:id/edit
func (h *AnnotationHandler) EditForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, apperrors.ErrCodeInvalidInput, "invalid annotation id")
	}

	form, err := h.usecase.EditForm(c.Request().Context(), id)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, form)
}

// Create stores a posted annotation.
// POST /v1/annotations
func (h *AnnotationHandler) Create(c echo.Context) error {
	input, fields := h.decodeInput(c)
	if len(fields) > 0 {
		return h.rejectForm(c, 0, input, fields)
	}

	annotation, err := h.usecase.Create(c.Request().Context(), input)
	if err != nil {
		return h.saveFailed(c, 0, err)
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusCreated, annotation)
	}
	return c.Redirect(http.StatusSeeOther, detailPath(annotation.ID))
}

// Update replaces a stored annotation with the posted one.
// POST /v1/annotations/:id
func (h *AnnotationHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, apperrors.ErrCodeInvalidInput, "invalid annotation id")
	}

	input, fields := h.decodeInput(c)
	if len(fields) > 0 {
		return h.rejectForm(c, id, input, fields)
	}

	annotation, err := h.usecase.Update(c.Request().Context(), id, input)
	if err != nil {
		return h.saveFailed(c, id, err)
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, annotation)
	}
	return c.Redirect(http.StatusSeeOther, detailPath(annotation.ID))
}

// Dispatch redirects to the edit form of the annotation of uri, or to the
// create form when there is none.
// GET /v1/annotations/edit?uri=
func (h *AnnotationHandler) Dispatch(c echo.Context) error {
	uri := c.QueryParam("uri")
	if strings.TrimSpace(uri) == "" {
		return handleError(c, h.logger, domain.ErrMissingURI)
	}

	resolution, err := h.usecase.Resolve(c.Request().Context(), uri)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	if resolution.Action == domain.ResolutionEdit {
		return c.Redirect(http.StatusFound, fmt.Sprintf("/v1/annotations/%d/edit", resolution.AnnotationID))
	}
	return c.Redirect(http.StatusFound, "/v1/annotations/new?uri="+url.QueryEscape(uri))
}

// ExportJSON returns the search field projection of uri.
// GET /v1/annotations/export/json?uri=
func (h *AnnotationHandler) ExportJSON(c echo.Context) error {
	data, err := h.usecase.ExportJSON(c.Request().Context(), c.QueryParam("uri"))
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, data)
}

// ExportRDF returns the annotation graph of uri.
// GET /v1/annotations/export/rdf?uri=&format=
func (h *AnnotationHandler) ExportRDF(c echo.Context) error {
	body, contentType, err := h.usecase.ExportRDF(c.Request().Context(), c.QueryParam("uri"), c.QueryParam("format"))
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.Blob(http.StatusOK, contentType, body)
}

// decodeInput reads the submission from a JSON body or from form values.
// Values that cannot be converted are reported as field errors.
func (h *AnnotationHandler) decodeInput(c echo.Context) (domain.AnnotationInput, []domain.FieldError) {
	var input domain.AnnotationInput

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := (&echo.DefaultBinder{}).BindBody(c, &input); err != nil {
			return input, []domain.FieldError{{Field: "body", Message: "must be a JSON object"}}
		}
		return input, nil
	}

	values, err := c.FormParams()
	if err != nil {
		return input, []domain.FieldError{{Field: "body", Message: "must be a form"}}
	}

	if err := h.decoder.Decode(&input, values); err != nil {
		return input, schemaFieldErrors(err)
	}
	return input, nil
}

func (h *AnnotationHandler) rejectForm(c echo.Context, id int64, input domain.AnnotationInput, fields []domain.FieldError) error {
	return c.JSON(http.StatusUnprocessableEntity, FormErrorResponse{
		Error: "validation failed",
		Code:  string(apperrors.ErrCodeValidationFailed),
		Form: domain.AnnotationForm{
			AnnotationID: id,
			Input:        input,
			Errors:       fields,
		},
	})
}

func (h *AnnotationHandler) saveFailed(c echo.Context, id int64, err error) error {
	var validationErr *domain.ValidationErrors
	if errors.As(err, &validationErr) {
		return h.rejectForm(c, id, validationErr.Input, validationErr.Fields)
	}
	return handleError(c, h.logger, err)
}

func schemaFieldErrors(err error) []domain.FieldError {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return []domain.FieldError{{Field: "body", Message: invalidValueMessage}}
	}

	names := make(map[string]struct{}, len(multi))
	for key := range multi {
		if i := strings.IndexByte(key, '.'); i >= 0 {
			key = key[:i]
		}
		names[key] = struct{}{}
	}

	fields := make([]domain.FieldError, 0, len(names))
	for name := range names {
		fields = append(fields, domain.FieldError{Field: name, Message: invalidValueMessage})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return fields
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

func detailPath(id int64) string {
	return fmt.Sprintf("/v1/annotations/%d", id)
}
