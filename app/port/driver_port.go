package port

//go:generate mockgen -source=driver_port.go -destination=../mocks/mock_driver_port.go -package=mock_port

import (
	"context"

	"annotate-service/app/domain"
)

// SearchIndexDriver is the raw document store behind SearchIndexGateway.
// Documents are keyed by their id field.
type SearchIndexDriver interface {
	GetDocument(ctx context.Context, id string) (map[string]any, bool, error)
	UpdateDocument(ctx context.Context, doc map[string]any) error
	Health(ctx context.Context) error
}

// EventStreamDriver appends events to a named stream.
type EventStreamDriver interface {
	Publish(ctx context.Context, stream string, event *domain.AnnotationEvent) (string, error)
}
