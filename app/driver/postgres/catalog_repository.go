package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"annotate-service/app/domain"
	"annotate-service/app/port"
)

// CatalogRepository implements port.CatalogRepository for PostgreSQL
type CatalogRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewCatalogRepository creates a new PostgreSQL catalog repository
func NewCatalogRepository(db DatabaseIface, logger *slog.Logger) port.CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger.With("component", "catalog_repository"),
	}
}

const conceptSelect = `
		SELECT c.id, c.pref_label, f.id, f.facet, f.uri
		FROM concepts c
		LEFT JOIN facets f ON f.id = c.facet_id`

// ListFacets returns all facets ordered by name.
func (r *CatalogRepository) ListFacets(ctx context.Context) ([]domain.Facet, error) {
	rows, err := r.db.Query(ctx, `SELECT id, facet, uri FROM facets ORDER BY facet ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list facets: %w", err)
	}
	defer rows.Close()

	facets := []domain.Facet{}
	for rows.Next() {
		var f domain.Facet
		if err := rows.Scan(&f.ID, &f.Name, &f.URI); err != nil {
			return nil, fmt.Errorf("failed to scan facet: %w", err)
		}
		facets = append(facets, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate facets: %w", err)
	}

	return facets, nil
}

// ListConcepts returns all concepts ordered by label.
func (r *CatalogRepository) ListConcepts(ctx context.Context) ([]domain.Concept, error) {
	rows, err := r.db.Query(ctx, conceptSelect+`
		ORDER BY c.pref_label ASC, c.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list concepts: %w", err)
	}

	concepts, err := r.scanConcepts(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list concepts: %w", err)
	}

	return concepts, nil
}

// GetConcepts loads the concepts for ids and returns them in the order of
// ids. Ids without a row are skipped; the caller compares lengths.
func (r *CatalogRepository) GetConcepts(ctx context.Context, ids []int64) ([]domain.Concept, error) {
	if len(ids) == 0 {
		return []domain.Concept{}, nil
	}

	rows, err := r.db.Query(ctx, conceptSelect+`
		WHERE c.id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get concepts: %w", err)
	}

	found, err := r.scanConcepts(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get concepts: %w", err)
	}

	byID := make(map[int64]domain.Concept, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	concepts := make([]domain.Concept, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			concepts = append(concepts, c)
		}
	}

	return concepts, nil
}

// UpsertFacet inserts the facet or updates the uri of the facet with the
// same name, and returns its id.
func (r *CatalogRepository) UpsertFacet(ctx context.Context, facet *domain.Facet) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO facets (facet, uri)
		VALUES ($1, $2)
		ON CONFLICT (facet) DO UPDATE SET uri = EXCLUDED.uri
		RETURNING id`,
		facet.Name, facet.URI,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to upsert facet", "facet", facet.Name, "error", err)
		return 0, fmt.Errorf("failed to upsert facet %q: %w", facet.Name, err)
	}

	facet.ID = id
	return id, nil
}

// UpsertConcept returns the id of the concept with this label and facet,
// creating it when missing. A nil facetID means the concept has no facet.
func (r *CatalogRepository) UpsertConcept(ctx context.Context, prefLabel string, facetID *int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO concepts (pref_label, facet_id)
		VALUES ($1, $2)
		ON CONFLICT (pref_label, (COALESCE(facet_id, 0))) DO UPDATE SET pref_label = EXCLUDED.pref_label
		RETURNING id`,
		prefLabel, facetID,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to upsert concept", "pref_label", prefLabel, "error", err)
		return 0, fmt.Errorf("failed to upsert concept %q: %w", prefLabel, err)
	}

	return id, nil
}

func (r *CatalogRepository) scanConcepts(rows pgx.Rows) ([]domain.Concept, error) {
	defer rows.Close()

	concepts := []domain.Concept{}
	for rows.Next() {
		var c domain.Concept
		var facetID *int64
		var facetName, facetURI *string

		if err := rows.Scan(&c.ID, &c.PrefLabel, &facetID, &facetName, &facetURI); err != nil {
			return nil, fmt.Errorf("failed to scan concept: %w", err)
		}
		c.Facet = facetFromColumns(facetID, facetName, facetURI)
		concepts = append(concepts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return concepts, nil
}
