package domain

import (
	"time"
)

// Annotation is a set of notes and tags attached to the resource identified by URI.
// Several annotations may share one URI; see AnnotationResolution.
type Annotation struct {
	ID        int64     `json:"id"`
	URI       string    `json:"uri"`
	Title     string    `json:"title,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Tags      []Concept `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTitle reports whether a title was entered.
func (a *Annotation) HasTitle() bool {
	return a.Title != ""
}

// HasNotes reports whether notes were entered.
func (a *Annotation) HasNotes() bool {
	return a.Notes != ""
}

// TagIDs returns the concept ids of the tags in their stored order.
func (a *Annotation) TagIDs() []int64 {
	ids := make([]int64, 0, len(a.Tags))
	for _, tag := range a.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

// IsNew reports whether the annotation has not been stored yet.
func (a *Annotation) IsNew() bool {
	return a.ID == 0
}

// AnnotationInput is the parsed form submission for create and update.
type AnnotationInput struct {
	URI    string  `json:"uri" schema:"uri" validate:"required,max=2048,annotation_uri"`
	Title  string  `json:"title" schema:"title" validate:"max=256"`
	Notes  string  `json:"notes" schema:"notes" validate:"max=65536"`
	TagIDs []int64 `json:"tags" schema:"tags" validate:"max=200,dive,gt=0"`
}

// AnnotationForm is what an edit or create form is rendered from.
type AnnotationForm struct {
	AnnotationID int64           `json:"annotation_id,omitempty"`
	Input        AnnotationInput `json:"input"`
	Concepts     []Concept       `json:"concepts"`
	Errors       []FieldError    `json:"errors,omitempty"`
}

// ResolutionAction tells the edit dispatcher where to send the client.
type ResolutionAction string

const (
	ResolutionCreate ResolutionAction = "create"
	ResolutionEdit   ResolutionAction = "edit"
)

// AnnotationResolution is the outcome of looking up an annotation by uri.
// Duplicates is the number of additional annotations sharing the uri; they
// are not merged.
type AnnotationResolution struct {
	Action       ResolutionAction `json:"action"`
	URI          string           `json:"uri"`
	AnnotationID int64            `json:"annotation_id,omitempty"`
	Duplicates   int              `json:"duplicates,omitempty"`
}

// AnnotationPage is one page of the annotation listing.
type AnnotationPage struct {
	Annotations []Annotation `json:"annotations"`
	Limit       int          `json:"limit"`
	Offset      int          `json:"offset"`
}
