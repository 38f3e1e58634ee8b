package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"annotate-service/app/domain"
	"annotate-service/app/port"
	"annotate-service/app/projector"
)

// CatalogUseCase implements vocabulary business logic
type CatalogUseCase struct {
	catalogRepo port.CatalogRepository
	logger      *slog.Logger
}

// NewCatalogUseCase creates a new CatalogUseCase instance
func NewCatalogUseCase(catalogRepo port.CatalogRepository, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		logger:      logger.With("component", "catalog_usecase"),
	}
}

func (uc *CatalogUseCase) ListFacets(ctx context.Context) ([]domain.Facet, error) {
	return uc.catalogRepo.ListFacets(ctx)
}

func (uc *CatalogUseCase) ListConcepts(ctx context.Context) ([]domain.Concept, error) {
	return uc.catalogRepo.ListConcepts(ctx)
}

// Import upserts the facets and then the concepts of catalog. Concepts may
// reference facets that are already stored. Facet uris become RDF/XML
// predicates and must be splittable into a namespace and an XML name.
func (uc *CatalogUseCase) Import(ctx context.Context, catalog *domain.Catalog) (*domain.CatalogImportResult, error) {
	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}

	stored, err := uc.catalogRepo.ListFacets(ctx)
	if err != nil {
		return nil, err
	}
	facetIDs := make(map[string]int64, len(stored)+len(catalog.Facets))
	for _, f := range stored {
		facetIDs[f.Name] = f.ID
	}

	result := &domain.CatalogImportResult{}
	for i := range catalog.Facets {
		facet := catalog.Facets[i]
		id, err := uc.catalogRepo.UpsertFacet(ctx, &facet)
		if err != nil {
			return nil, err
		}
		facetIDs[facet.Name] = id
		result.Facets++
	}

	for _, concept := range catalog.Concepts {
		var facetID *int64
		if concept.Facet != "" {
			id, ok := facetIDs[concept.Facet]
			if !ok {
				return nil, fmt.Errorf("concept %q: %w: %s", concept.PrefLabel, domain.ErrFacetNotFound, concept.Facet)
			}
			facetID = &id
		}

		if _, err := uc.catalogRepo.UpsertConcept(ctx, concept.PrefLabel, facetID); err != nil {
			return nil, err
		}
		result.Concepts++
	}

	uc.logger.Info("catalog imported", "facets", result.Facets, "concepts", result.Concepts)
	return result, nil
}

func validateCatalog(catalog *domain.Catalog) error {
	if catalog == nil {
		return fmt.Errorf("catalog is empty")
	}

	for i, facet := range catalog.Facets {
		if strings.TrimSpace(facet.Name) == "" {
			return fmt.Errorf("facet %d: name is required", i)
		}
		if projector.ReservedField(facet.Name) {
			return fmt.Errorf("facet %q: %w", facet.Name, domain.ErrReservedFacetName)
		}
		if facet.URI != "" && !projector.ValidPredicateIRI(facet.URI) {
			return fmt.Errorf("facet %q: uri %q is not usable as an RDF predicate", facet.Name, facet.URI)
		}
	}

	for i, concept := range catalog.Concepts {
		if strings.TrimSpace(concept.PrefLabel) == "" {
			return fmt.Errorf("concept %d: pref_label is required", i)
		}
	}
	return nil
}
