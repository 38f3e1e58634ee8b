package port

//go:generate mockgen -source=catalog_port.go -destination=../mocks/mock_catalog_port.go -package=mock_port

import (
	"context"

	"annotate-service/app/domain"
)

// CatalogUsecase defines vocabulary business logic
type CatalogUsecase interface {
	ListFacets(ctx context.Context) ([]domain.Facet, error)
	ListConcepts(ctx context.Context) ([]domain.Concept, error)
	Import(ctx context.Context, catalog *domain.Catalog) (*domain.CatalogImportResult, error)
}

// CatalogRepository defines vocabulary data access
type CatalogRepository interface {
	ListFacets(ctx context.Context) ([]domain.Facet, error)
	ListConcepts(ctx context.Context) ([]domain.Concept, error)
	// GetConcepts returns the concepts in the order of ids; unknown ids are
	// left out of the result.
	GetConcepts(ctx context.Context, ids []int64) ([]domain.Concept, error)
	UpsertFacet(ctx context.Context, facet *domain.Facet) (int64, error)
	UpsertConcept(ctx context.Context, prefLabel string, facetID *int64) (int64, error)
}
