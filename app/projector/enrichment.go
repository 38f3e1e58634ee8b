package projector

import (
	"annotate-service/app/domain"
)

// Enrichment plugin names.
const (
	PluginEnhanceAnnotations  = "enhance_annotations"
	PluginEnhanceMultilingual = "enhance_multilingual"
)

// Single-value fields written by the enrichment run. They are overwritten
// even though the run otherwise appends.
const (
	FieldETLTimeMillis                    = "etl_time_millis_i"
	FieldETLEnhanceAnnotations            = "etl_enhance_annotations_b"
	FieldETLEnhanceAnnotationsTimeMillis  = "etl_enhance_annotations_time_millis_i"
	FieldETLEnhanceMultilingual           = "etl_enhance_multilingual_b"
	FieldETLEnhanceMultilingualTimeMillis = "etl_enhance_multilingual_time_millis_i"
)

// BuildIndexEnrichmentRequest returns the request that re-applies the
// annotations of uri to its search index document. Existing text is added
// to, not replaced, apart from the notes and the etl bookkeeping fields.
func BuildIndexEnrichmentRequest(uri string) domain.EnrichmentRequest {
	return domain.NewEnrichmentRequest(
		uri,
		[]string{PluginEnhanceAnnotations, PluginEnhanceMultilingual},
		true,
		true,
		[]string{
			FieldNotes,
			FieldETLTimeMillis,
			FieldETLEnhanceAnnotations,
			FieldETLEnhanceAnnotationsTimeMillis,
			FieldETLEnhanceMultilingual,
			FieldETLEnhanceMultilingualTimeMillis,
		},
	)
}
