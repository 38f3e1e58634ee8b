package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names an annotation lifecycle event.
type EventType string

const (
	EventTypeAnnotationSaved EventType = "annotation.saved"
)

// AnnotationEvent is published after an annotation was stored.
type AnnotationEvent struct {
	EventID      string    `json:"event_id"`
	EventType    EventType `json:"event_type"`
	AnnotationID int64     `json:"annotation_id"`
	URI          string    `json:"uri"`
	Created      bool      `json:"created"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewAnnotationSavedEvent builds the event for a stored annotation.
func NewAnnotationSavedEvent(annotation *Annotation, created bool) *AnnotationEvent {
	return &AnnotationEvent{
		EventID:      uuid.NewString(),
		EventType:    EventTypeAnnotationSaved,
		AnnotationID: annotation.ID,
		URI:          annotation.URI,
		Created:      created,
		OccurredAt:   time.Now().UTC(),
	}
}
