package port

//go:generate mockgen -source=enrichment_port.go -destination=../mocks/mock_enrichment_port.go -package=mock_port

import (
	"context"

	"annotate-service/app/domain"
)

// IndexEnrichmentClient applies an enrichment request to the search index.
// Any plugin or commit failure is returned, never swallowed.
type IndexEnrichmentClient interface {
	Enrich(ctx context.Context, req domain.EnrichmentRequest) error
}

// SearchIndexGateway reads and writes search index documents by uri.
type SearchIndexGateway interface {
	// GetDocument returns found=false when the index has no document for uri.
	GetDocument(ctx context.Context, uri string) (doc domain.IndexDocument, found bool, err error)
	// SaveDocument writes the document and waits until the index applied it.
	SaveDocument(ctx context.Context, uri string, doc domain.IndexDocument) error
	HealthCheck(ctx context.Context) error
}

// AnnotationEventPublisher publishes annotation lifecycle events.
type AnnotationEventPublisher interface {
	PublishAnnotationSaved(ctx context.Context, event *domain.AnnotationEvent) error
	IsEnabled() bool
}
