package domain

// EnrichmentRequest carries the parameters of one index enrichment run.
// It is built per call and never mutated; accessors hand out copies.
type EnrichmentRequest struct {
	documentID string
	plugins    []string
	failFast   bool
	add        bool
	fieldsSet  []string
}

// NewEnrichmentRequest copies its slice arguments so callers cannot alter the request later.
func NewEnrichmentRequest(documentID string, plugins []string, failFast, add bool, fieldsSet []string) EnrichmentRequest {
	return EnrichmentRequest{
		documentID: documentID,
		plugins:    append([]string(nil), plugins...),
		failFast:   failFast,
		add:        add,
		fieldsSet:  append([]string(nil), fieldsSet...),
	}
}

// DocumentID is the resource uri the index document is keyed by.
func (r EnrichmentRequest) DocumentID() string { return r.documentID }

// Plugins lists the plugins to run, in order.
func (r EnrichmentRequest) Plugins() []string { return append([]string(nil), r.plugins...) }

// FailFast reports whether a plugin error aborts the run.
func (r EnrichmentRequest) FailFast() bool { return r.failFast }

// Add reports whether multi-valued fields are appended to instead of replaced.
func (r EnrichmentRequest) Add() bool { return r.add }

// FieldsSet lists the fields that are always overwritten.
func (r EnrichmentRequest) FieldsSet() []string { return append([]string(nil), r.fieldsSet...) }

// Overwrites reports whether field is in the overwrite list.
func (r EnrichmentRequest) Overwrites(field string) bool {
	for _, f := range r.fieldsSet {
		if f == field {
			return true
		}
	}
	return false
}

// IndexDocument is a search index document: field name to a string, bool,
// number or list of strings.
type IndexDocument map[string]any
