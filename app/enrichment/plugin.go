// Package enrichment runs the plugin pipeline that folds annotations into
// the search index document of a resource.
package enrichment

import (
	"context"

	"annotate-service/app/domain"
	"annotate-service/app/projector"
)

// Plugin adds fields for one uri to the pending document.
// Plugins run in request order and see what earlier plugins wrote.
type Plugin interface {
	Name() string
	Apply(ctx context.Context, uri string, doc domain.IndexDocument) error
}

// FlagField is the boolean field recording that plugin ran.
func FlagField(plugin string) string {
	return projector.ETLFieldPrefix + plugin + "_b"
}

// TimeField is the field recording how long plugin took, in milliseconds.
func TimeField(plugin string) string {
	return projector.ETLFieldPrefix + plugin + "_time_millis_i"
}
