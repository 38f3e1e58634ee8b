// Package projector maps annotations onto their export shapes: the search
// field document, the RDF graph and the index enrichment request.
package projector

import (
	"strings"

	"annotate-service/app/domain"
)

// Search field names written by the JSON projection.
const (
	FieldTitle = "title_txt"
	FieldNotes = "notes_txt"
)

// Fields owned by the index document and the enrichment plugins.
const (
	FieldDocumentID     = "id"
	FieldDocumentURI    = "uri"
	FieldDefaultText    = "_text_"
	LanguageFieldPrefix = "text_txt_"
	ETLFieldPrefix      = "etl_"
)

// ReservedField reports whether name is written by something other than a
// tag. A facet with such a name would clobber that field or be skipped by
// the enrichment plugins.
func ReservedField(name string) bool {
	switch name {
	case FieldTitle, FieldNotes, FieldDocumentID, FieldDocumentURI, FieldDefaultText:
		return true
	}
	return strings.HasPrefix(name, LanguageFieldPrefix) || strings.HasPrefix(name, ETLFieldPrefix)
}

// ProjectJSON builds the field document for all annotations of one uri.
// Title and notes are last writer wins. Each tag label is appended to the
// list of its facet field, or to tag_ss when the concept has no facet.
// Lists keep annotation then tag order and are not deduplicated.
func ProjectJSON(annotations []domain.Annotation) map[string]any {
	data := make(map[string]any)

	for _, annotation := range annotations {
		if annotation.HasTitle() {
			data[FieldTitle] = annotation.Title
		}

		if annotation.HasNotes() {
			data[FieldNotes] = annotation.Notes
		}

		for _, tag := range annotation.Tags {
			field := TagField(tag)
			labels, _ := data[field].([]string)
			data[field] = append(labels, tag.PrefLabel)
		}
	}

	return data
}

// TagField returns the search field a tag's label is stored under.
func TagField(tag domain.Concept) string {
	if tag.HasFacet() {
		return tag.Facet.Name
	}
	return domain.DefaultTagField
}
