package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"annotate-service/app/domain"
	"annotate-service/app/port"
)

const annotationColumns = `id, uri, title, notes, created_at, updated_at`

// AnnotationRepository implements port.AnnotationRepository for PostgreSQL
type AnnotationRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAnnotationRepository creates a new PostgreSQL annotation repository
func NewAnnotationRepository(db DatabaseIface, logger *slog.Logger) port.AnnotationRepository {
	return &AnnotationRepository{
		db:     db,
		logger: logger.With("component", "annotation_repository"),
	}
}

// FindByURI returns all annotations for uri ordered by id. More than one row
// means concurrent creates raced; callers decide what to do with the extras.
func (r *AnnotationRepository) FindByURI(ctx context.Context, uri string) ([]domain.Annotation, error) {
	query := `SELECT ` + annotationColumns + `
		FROM annotations
		WHERE uri = $1
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, uri)
	if err != nil {
		r.logger.Error("Failed to query annotations by uri", "uri", uri, "error", err)
		return nil, fmt.Errorf("failed to find annotations by uri: %w", err)
	}

	annotations, err := scanAnnotations(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to find annotations by uri: %w", err)
	}

	if err := r.loadTags(ctx, annotations); err != nil {
		return nil, err
	}

	r.logger.Debug("Found annotations by uri", "uri", uri, "count", len(annotations))
	return annotations, nil
}

// Get returns the annotation with id, or domain.ErrAnnotationNotFound.
func (r *AnnotationRepository) Get(ctx context.Context, id int64) (*domain.Annotation, error) {
	query := `SELECT ` + annotationColumns + `
		FROM annotations
		WHERE id = $1`

	annotation := domain.Annotation{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&annotation.ID,
		&annotation.URI,
		&annotation.Title,
		&annotation.Notes,
		&annotation.CreatedAt,
		&annotation.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnnotationNotFound
		}
		r.logger.Error("Failed to get annotation", "annotation_id", id, "error", err)
		return nil, fmt.Errorf("failed to get annotation: %w", err)
	}

	annotations := []domain.Annotation{annotation}
	if err := r.loadTags(ctx, annotations); err != nil {
		return nil, err
	}

	return &annotations[0], nil
}

// Save writes the annotation and replaces its tags in one transaction.
// A zero id inserts; the new id and timestamps are set on annotation.
func (r *AnnotationRepository) Save(ctx context.Context, annotation *domain.Annotation) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if annotation.IsNew() {
		err = tx.QueryRow(ctx, `
			INSERT INTO annotations (uri, title, notes, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			RETURNING id, created_at, updated_at`,
			annotation.URI, annotation.Title, annotation.Notes,
		).Scan(&annotation.ID, &annotation.CreatedAt, &annotation.UpdatedAt)
	} else {
		err = tx.QueryRow(ctx, `
			UPDATE annotations
			SET uri = $2, title = $3, notes = $4, updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at`,
			annotation.ID, annotation.URI, annotation.Title, annotation.Notes,
		).Scan(&annotation.CreatedAt, &annotation.UpdatedAt)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrAnnotationNotFound
		}
		r.logger.Error("Failed to save annotation", "annotation_id", annotation.ID, "uri", annotation.URI, "error", err)
		return 0, fmt.Errorf("failed to save annotation: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM annotation_tags WHERE annotation_id = $1`, annotation.ID); err != nil {
		return 0, fmt.Errorf("failed to clear annotation tags: %w", err)
	}

	for position, tag := range annotation.Tags {
		if _, err := tx.Exec(ctx, `
			INSERT INTO annotation_tags (annotation_id, concept_id, position)
			VALUES ($1, $2, $3)`,
			annotation.ID, tag.ID, position,
		); err != nil {
			return 0, fmt.Errorf("failed to store annotation tag %d: %w", tag.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit annotation: %w", err)
	}

	r.logger.Info("Annotation saved", "annotation_id", annotation.ID, "uri", annotation.URI, "tags", len(annotation.Tags))
	return annotation.ID, nil
}

// List returns a page of annotations, newest first.
func (r *AnnotationRepository) List(ctx context.Context, limit, offset int) ([]domain.Annotation, error) {
	query := `SELECT ` + annotationColumns + `
		FROM annotations
		ORDER BY updated_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list annotations: %w", err)
	}

	annotations, err := scanAnnotations(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list annotations: %w", err)
	}

	if err := r.loadTags(ctx, annotations); err != nil {
		return nil, err
	}

	return annotations, nil
}

// loadTags fills Tags for each annotation in stored position order.
func (r *AnnotationRepository) loadTags(ctx context.Context, annotations []domain.Annotation) error {
	if len(annotations) == 0 {
		return nil
	}

	ids := make([]int64, len(annotations))
	index := make(map[int64]int, len(annotations))
	for i, a := range annotations {
		ids[i] = a.ID
		index[a.ID] = i
		annotations[i].Tags = []domain.Concept{}
	}

	query := `
		SELECT at.annotation_id, c.id, c.pref_label, f.id, f.facet, f.uri
		FROM annotation_tags at
		JOIN concepts c ON c.id = at.concept_id
		LEFT JOIN facets f ON f.id = c.facet_id
		WHERE at.annotation_id = ANY($1)
		ORDER BY at.annotation_id, at.position`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load annotation tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var annotationID int64
		var concept domain.Concept
		var facetID *int64
		var facetName, facetURI *string

		if err := rows.Scan(&annotationID, &concept.ID, &concept.PrefLabel, &facetID, &facetName, &facetURI); err != nil {
			return fmt.Errorf("failed to scan annotation tag: %w", err)
		}
		concept.Facet = facetFromColumns(facetID, facetName, facetURI)

		i, ok := index[annotationID]
		if !ok {
			continue
		}
		annotations[i].Tags = append(annotations[i].Tags, concept)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate annotation tags: %w", err)
	}

	return nil
}

func scanAnnotations(rows pgx.Rows) ([]domain.Annotation, error) {
	defer rows.Close()

	annotations := []domain.Annotation{}
	for rows.Next() {
		var a domain.Annotation
		if err := rows.Scan(&a.ID, &a.URI, &a.Title, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan annotation: %w", err)
		}
		annotations = append(annotations, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return annotations, nil
}

// facetFromColumns builds the facet of a LEFT JOIN row; nil id means no facet.
func facetFromColumns(id *int64, name, uri *string) *domain.Facet {
	if id == nil {
		return nil
	}
	facet := &domain.Facet{ID: *id}
	if name != nil {
		facet.Name = *name
	}
	if uri != nil {
		facet.URI = *uri
	}
	return facet
}
