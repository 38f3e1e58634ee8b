package gateway

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"annotate-service/app/domain"
	"annotate-service/app/port"
	"annotate-service/app/projector"
)

// Reserved document fields.
const (
	FieldID  = projector.FieldDocumentID
	FieldURI = projector.FieldDocumentURI
)

// SearchIndexGateway implements port.SearchIndexGateway on top of a
// document store keyed by DocumentID.
type SearchIndexGateway struct {
	driver port.SearchIndexDriver
	logger *slog.Logger
}

// NewSearchIndexGateway creates a new SearchIndexGateway instance
func NewSearchIndexGateway(driver port.SearchIndexDriver, logger *slog.Logger) *SearchIndexGateway {
	return &SearchIndexGateway{
		driver: driver,
		logger: logger.With("component", "search_index_gateway"),
	}
}

// DocumentID maps a resource uri onto a valid index primary key.
func DocumentID(uri string) string {
	sum := sha256.Sum256([]byte(uri))
	return hex.EncodeToString(sum[:])
}

// GetDocument loads the document of uri without its reserved fields.
func (g *SearchIndexGateway) GetDocument(ctx context.Context, uri string) (domain.IndexDocument, bool, error) {
	raw, found, err := g.driver.GetDocument(ctx, DocumentID(uri))
	if err != nil {
		g.logger.Error("failed to fetch document", "uri", uri, "error", err)
		return nil, false, &domain.SearchIndexError{Op: "get", Err: err}
	}
	if !found {
		g.logger.Debug("document not in index", "uri", uri)
		return nil, false, nil
	}

	doc := make(domain.IndexDocument, len(raw))
	for field, value := range raw {
		if field == FieldID || field == FieldURI {
			continue
		}
		doc[field] = normalizeValue(value)
	}
	return doc, true, nil
}

// SaveDocument writes doc as the document of uri.
func (g *SearchIndexGateway) SaveDocument(ctx context.Context, uri string, doc domain.IndexDocument) error {
	raw := make(map[string]any, len(doc)+2)
	for field, value := range doc {
		raw[field] = value
	}
	raw[FieldID] = DocumentID(uri)
	raw[FieldURI] = uri

	if err := g.driver.UpdateDocument(ctx, raw); err != nil {
		g.logger.Error("failed to save document", "uri", uri, "error", err)
		return &domain.SearchIndexError{Op: "save", Err: err}
	}

	g.logger.Debug("document saved", "uri", uri, "fields", len(doc))
	return nil
}

// HealthCheck reports whether the index answers.
func (g *SearchIndexGateway) HealthCheck(ctx context.Context) error {
	if err := g.driver.Health(ctx); err != nil {
		return &domain.SearchIndexError{Op: "health", Err: err}
	}
	return nil
}

// normalizeValue turns decoded JSON string lists back into []string.
func normalizeValue(value any) any {
	list, ok := value.([]any)
	if !ok {
		return value
	}
	values := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return value
		}
		values = append(values, s)
	}
	return values
}
