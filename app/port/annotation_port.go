package port

//go:generate mockgen -source=annotation_port.go -destination=../mocks/mock_annotation_port.go -package=mock_port

import (
	"context"

	"annotate-service/app/domain"
)

// AnnotationUsecase defines the annotation business logic interface
type AnnotationUsecase interface {
	// Forms
	NewForm(ctx context.Context, uri string) (*domain.AnnotationForm, error)
	EditForm(ctx context.Context, id int64) (*domain.AnnotationForm, error)

	// Writes: validation failures come back as *domain.ValidationErrors
	Create(ctx context.Context, input domain.AnnotationInput) (*domain.Annotation, error)
	Update(ctx context.Context, id int64, input domain.AnnotationInput) (*domain.Annotation, error)

	// Reads
	Get(ctx context.Context, id int64) (*domain.Annotation, error)
	List(ctx context.Context, limit, offset int) (*domain.AnnotationPage, error)
	Resolve(ctx context.Context, uri string) (*domain.AnnotationResolution, error)

	// Exports
	ExportJSON(ctx context.Context, uri string) (map[string]any, error)
	ExportRDF(ctx context.Context, uri string, format string) ([]byte, string, error)
}

// AnnotationRepository defines annotation data access
type AnnotationRepository interface {
	// FindByURI returns every annotation with exactly this uri, oldest first.
	FindByURI(ctx context.Context, uri string) ([]domain.Annotation, error)
	// Get returns domain.ErrAnnotationNotFound for an unknown id.
	Get(ctx context.Context, id int64) (*domain.Annotation, error)
	// Save inserts when the id is zero and updates otherwise; tags are replaced.
	Save(ctx context.Context, annotation *domain.Annotation) (int64, error)
	List(ctx context.Context, limit, offset int) ([]domain.Annotation, error)
}
