package enrichment

import (
	"context"
	"fmt"

	"annotate-service/app/domain"
	"annotate-service/app/port"
	"annotate-service/app/projector"
)

// EnhanceAnnotations writes the JSON projection of every annotation of the uri.
type EnhanceAnnotations struct {
	repo port.AnnotationRepository
}

// NewEnhanceAnnotations creates the enhance_annotations plugin.
func NewEnhanceAnnotations(repo port.AnnotationRepository) *EnhanceAnnotations {
	return &EnhanceAnnotations{repo: repo}
}

func (p *EnhanceAnnotations) Name() string {
	return projector.PluginEnhanceAnnotations
}

func (p *EnhanceAnnotations) Apply(ctx context.Context, uri string, doc domain.IndexDocument) error {
	annotations, err := p.repo.FindByURI(ctx, uri)
	if err != nil {
		return fmt.Errorf("failed to load annotations: %w", err)
	}

	for field, value := range projector.ProjectJSON(annotations) {
		doc[field] = value
	}
	return nil
}
