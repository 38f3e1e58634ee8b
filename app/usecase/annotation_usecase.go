package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"annotate-service/app/domain"
	"annotate-service/app/port"
	"annotate-service/app/projector"
	"annotate-service/app/utils/metrics"
	"annotate-service/app/utils/sanitizer"
	"annotate-service/app/utils/validator"
)

// Listing bounds
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

const unknownConceptMessage = "must reference existing concepts"

// AnnotationUseCase implements annotation business logic
type AnnotationUseCase struct {
	annotationRepo port.AnnotationRepository
	catalogRepo    port.CatalogRepository
	enrichment     port.IndexEnrichmentClient
	events         port.AnnotationEventPublisher
	sanitizer      *sanitizer.Sanitizer
	logger         *slog.Logger
}

// NewAnnotationUseCase creates a new AnnotationUseCase instance
func NewAnnotationUseCase(
	annotationRepo port.AnnotationRepository,
	catalogRepo port.CatalogRepository,
	enrichment port.IndexEnrichmentClient,
	events port.AnnotationEventPublisher,
	logger *slog.Logger,
) *AnnotationUseCase {
	return &AnnotationUseCase{
		annotationRepo: annotationRepo,
		catalogRepo:    catalogRepo,
		enrichment:     enrichment,
		events:         events,
		sanitizer:      sanitizer.New(),
		logger:         logger.With("component", "annotation_usecase"),
	}
}

// NewForm returns an empty form for uri with the selectable concepts.
func (uc *AnnotationUseCase) NewForm(ctx context.Context, uri string) (*domain.AnnotationForm, error) {
	concepts, err := uc.catalogRepo.ListConcepts(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AnnotationForm{
		Input:    domain.AnnotationInput{URI: strings.TrimSpace(uri), TagIDs: []int64{}},
		Concepts: concepts,
	}, nil
}

// EditForm returns the form pre-filled from a stored annotation.
func (uc *AnnotationUseCase) EditForm(ctx context.Context, id int64) (*domain.AnnotationForm, error) {
	annotation, err := uc.annotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	concepts, err := uc.catalogRepo.ListConcepts(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AnnotationForm{
		AnnotationID: annotation.ID,
		Input: domain.AnnotationInput{
			URI:    annotation.URI,
			Title:  annotation.Title,
			Notes:  annotation.Notes,
			TagIDs: annotation.TagIDs(),
		},
		Concepts: concepts,
	}, nil
}

// Create stores a new annotation and re-indexes its uri.
func (uc *AnnotationUseCase) Create(ctx context.Context, input domain.AnnotationInput) (*domain.Annotation, error) {
	return uc.save(ctx, &domain.Annotation{}, input, "create")
}

// Update replaces the fields and tags of annotation id and re-indexes its uri.
func (uc *AnnotationUseCase) Update(ctx context.Context, id int64, input domain.AnnotationInput) (*domain.Annotation, error) {
	existing, err := uc.annotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.save(ctx, existing, input, "update")
}

// save runs sanitize, validate, store, publish, enrich. The annotation stays
// stored when enrichment fails; the error is still returned.
func (uc *AnnotationUseCase) save(ctx context.Context, annotation *domain.Annotation, input domain.AnnotationInput, operation string) (*domain.Annotation, error) {
	clean := uc.sanitizer.AnnotationInput(input)
	clean.TagIDs = uniqueIDs(clean.TagIDs)

	fields := validator.ValidateAnnotationInput(clean)
	var tags []domain.Concept
	if len(fields) == 0 {
		var err error
		tags, err = uc.catalogRepo.GetConcepts(ctx, clean.TagIDs)
		if err != nil {
			return nil, err
		}
		if len(tags) != len(clean.TagIDs) {
			fields = append(fields, domain.FieldError{Field: "tags", Message: unknownConceptMessage})
		}
	}
	if len(fields) > 0 {
		metrics.RecordValidationFailure(operation)
		return nil, domain.NewValidationErrors(input, fields)
	}

	annotation.URI = clean.URI
	annotation.Title = clean.Title
	annotation.Notes = clean.Notes
	annotation.Tags = tags
	if annotation.Tags == nil {
		annotation.Tags = []domain.Concept{}
	}

	created := annotation.IsNew()
	if _, err := uc.annotationRepo.Save(ctx, annotation); err != nil {
		return nil, err
	}
	metrics.RecordSave(operation)

	log := uc.logger.With("annotation_id", annotation.ID, "uri", annotation.URI)
	log.Info("annotation saved", "operation", operation, "tags", len(annotation.Tags))

	if uc.events.IsEnabled() {
		if err := uc.events.PublishAnnotationSaved(ctx, domain.NewAnnotationSavedEvent(annotation, created)); err != nil {
			log.Warn("annotation event not published", "error", err)
		}
	}

	if err := uc.enrichment.Enrich(ctx, projector.BuildIndexEnrichmentRequest(annotation.URI)); err != nil {
		log.Error("index enrichment failed", "error", err)
		return nil, fmt.Errorf("annotation %d saved but not indexed: %w", annotation.ID, err)
	}

	return annotation, nil
}

// Get returns one annotation with its tags.
func (uc *AnnotationUseCase) Get(ctx context.Context, id int64) (*domain.Annotation, error) {
	return uc.annotationRepo.Get(ctx, id)
}

// List returns a page of annotations, most recently updated first.
func (uc *AnnotationUseCase) List(ctx context.Context, limit, offset int) (*domain.AnnotationPage, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	annotations, err := uc.annotationRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if annotations == nil {
		annotations = []domain.Annotation{}
	}

	return &domain.AnnotationPage{
		Annotations: annotations,
		Limit:       limit,
		Offset:      offset,
	}, nil
}

// Resolve decides whether uri is edited or created. With several
// annotations for uri the lowest id wins; the rest are counted, not merged.
func (uc *AnnotationUseCase) Resolve(ctx context.Context, uri string) (*domain.AnnotationResolution, error) {
	annotations, err := uc.findByURI(ctx, uri)
	if err != nil {
		return nil, err
	}

	if len(annotations) == 0 {
		return &domain.AnnotationResolution{Action: domain.ResolutionCreate, URI: uri}, nil
	}

	if len(annotations) > 1 {
		metrics.RecordDuplicateURI()
		uc.logger.Warn("several annotations share one uri",
			"uri", uri,
			"count", len(annotations),
			"annotation_id", annotations[0].ID)
	}

	return &domain.AnnotationResolution{
		Action:       domain.ResolutionEdit,
		URI:          uri,
		AnnotationID: annotations[0].ID,
		Duplicates:   len(annotations) - 1,
	}, nil
}

// ExportJSON returns the search field projection of the annotations of uri.
func (uc *AnnotationUseCase) ExportJSON(ctx context.Context, uri string) (map[string]any, error) {
	annotations, err := uc.findByURI(ctx, uri)
	if err != nil {
		return nil, err
	}

	metrics.RecordExport("json")
	return projector.ProjectJSON(annotations), nil
}

// ExportRDF serializes the annotation graph of uri and returns the body
// with its media type. An empty format selects RDF/XML.
func (uc *AnnotationUseCase) ExportRDF(ctx context.Context, uri string, format string) ([]byte, string, error) {
	info, err := projector.ParseFormat(format)
	if err != nil {
		return nil, "", err
	}

	annotations, err := uc.findByURI(ctx, uri)
	if err != nil {
		return nil, "", err
	}

	body, err := projector.Serialize(projector.ProjectRDF(annotations), info.Name)
	if err != nil {
		if errors.Is(err, projector.ErrUnsplittablePredicate) {
			uc.logger.Error("facet uri cannot be serialized", "uri", uri, "format", info.Name, "error", err)
		}
		return nil, "", fmt.Errorf("failed to serialize graph: %w", err)
	}

	metrics.RecordExport(string(info.Name))
	return body, info.MIMEType, nil
}

func (uc *AnnotationUseCase) findByURI(ctx context.Context, uri string) ([]domain.Annotation, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, domain.ErrMissingURI
	}
	return uc.annotationRepo.FindByURI(ctx, uri)
}

// uniqueIDs drops repeated ids, keeping first occurrences in order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
