package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"annotate-service/app/port"
)

// CatalogHandler serves the vocabulary.
type CatalogHandler struct {
	usecase port.CatalogUsecase
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(usecase port.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		usecase: usecase,
		logger:  logger.With("component", "catalog_handler"),
	}
}

// ListFacets handles GET /v1/facets
func (h *CatalogHandler) ListFacets(c echo.Context) error {
	facets, err := h.usecase.ListFacets(c.Request().Context())
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, facets)
}

// ListConcepts handles GET /v1/concepts
func (h *CatalogHandler) ListConcepts(c echo.Context) error {
	concepts, err := h.usecase.ListConcepts(c.Request().Context())
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, concepts)
}
