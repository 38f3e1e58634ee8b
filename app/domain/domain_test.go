package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotation(t *testing.T) {
	a := &Annotation{}
	assert.True(t, a.IsNew())
	assert.False(t, a.HasTitle())
	assert.False(t, a.HasNotes())
	assert.Empty(t, a.TagIDs())

	a = &Annotation{
		ID:    4,
		Title: "Example",
		Notes: "note",
		Tags:  []Concept{{ID: 9}, {ID: 3}},
	}
	assert.False(t, a.IsNew())
	assert.True(t, a.HasTitle())
	assert.True(t, a.HasNotes())
	assert.Equal(t, []int64{9, 3}, a.TagIDs())
}

func TestEnrichmentRequest_IsImmutable(t *testing.T) {
	plugins := []string{"enhance_annotations"}
	fields := []string{"notes_txt"}
	req := NewEnrichmentRequest("http://x/1", plugins, true, true, fields)

	plugins[0] = "changed"
	fields[0] = "changed"
	assert.Equal(t, []string{"enhance_annotations"}, req.Plugins())
	assert.Equal(t, []string{"notes_txt"}, req.FieldsSet())

	got := req.Plugins()
	got[0] = "changed"
	assert.Equal(t, "enhance_annotations", req.Plugins()[0])

	assert.Equal(t, "http://x/1", req.DocumentID())
	assert.True(t, req.FailFast())
	assert.True(t, req.Add())
	assert.True(t, req.Overwrites("notes_txt"))
	assert.False(t, req.Overwrites("title_txt"))
}

func TestNewAnnotationSavedEvent(t *testing.T) {
	event := NewAnnotationSavedEvent(&Annotation{ID: 7, URI: "http://x/1"}, true)

	_, err := uuid.Parse(event.EventID)
	require.NoError(t, err)
	assert.Equal(t, EventTypeAnnotationSaved, event.EventType)
	assert.Equal(t, int64(7), event.AnnotationID)
	assert.Equal(t, "http://x/1", event.URI)
	assert.True(t, event.Created)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestErrors(t *testing.T) {
	validation := NewValidationErrors(AnnotationInput{URI: "x"}, []FieldError{
		{Field: "uri", Message: "must be an absolute uri"},
		{Field: "tags", Message: "must reference existing concepts"},
	})
	assert.Equal(t, "validation failed: uri: must be an absolute uri, tags: must reference existing concepts", validation.Error())

	cause := errors.New("timeout")
	withPlugin := &EnrichmentError{Plugin: "enhance_annotations", Op: "apply", Err: cause}
	assert.Equal(t, "enrichment apply [enhance_annotations]: timeout", withPlugin.Error())
	assert.ErrorIs(t, withPlugin, cause)

	commit := &EnrichmentError{Op: "commit", Err: cause}
	assert.Equal(t, "enrichment commit: timeout", commit.Error())

	index := &SearchIndexError{Op: "get", Err: cause}
	assert.Equal(t, "search index get: timeout", index.Error())
	assert.ErrorIs(t, index, cause)
}
