package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Annotation and catalog errors
var (
	ErrAnnotationNotFound = errors.New("annotation not found")
	ErrFacetNotFound      = errors.New("facet not found")
	ErrReservedFacetName  = errors.New("facet name is a reserved search field")

	// Request errors
	ErrMissingURI        = errors.New("uri is required")
	ErrUnsupportedFormat = errors.New("unsupported format")

	// Enrichment errors
	ErrUnknownPlugin = errors.New("unknown enrichment plugin")
)

// FieldError describes one invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned when a submission cannot be stored.
// Input is the submission as received, for re-display.
type ValidationErrors struct {
	Fields []FieldError
	Input  AnnotationInput
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// NewValidationErrors wraps field errors together with the rejected input.
func NewValidationErrors(input AnnotationInput, fields []FieldError) *ValidationErrors {
	return &ValidationErrors{
		Fields: fields,
		Input:  input,
	}
}

// EnrichmentError is a failure inside the enrichment pipeline.
// Plugin is empty when the failure happened while committing.
type EnrichmentError struct {
	Plugin string
	Op     string
	Err    error
}

func (e *EnrichmentError) Error() string {
	if e.Plugin != "" {
		return fmt.Sprintf("enrichment %s [%s]: %v", e.Op, e.Plugin, e.Err)
	}
	return fmt.Sprintf("enrichment %s: %v", e.Op, e.Err)
}

func (e *EnrichmentError) Unwrap() error {
	return e.Err
}

// SearchIndexError is a failure talking to the search index.
type SearchIndexError struct {
	Op  string
	Err error
}

func (e *SearchIndexError) Error() string {
	return fmt.Sprintf("search index %s: %v", e.Op, e.Err)
}

func (e *SearchIndexError) Unwrap() error {
	return e.Err
}
