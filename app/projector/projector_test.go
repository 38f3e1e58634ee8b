package projector_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annotate-service/app/domain"
	"annotate-service/app/projector"
)

func location() *domain.Facet {
	return &domain.Facet{ID: 1, Name: "location_ss", URI: "http://ex.org/prop"}
}

func TestProjectJSON(t *testing.T) {
	tests := []struct {
		name        string
		annotations []domain.Annotation
		want        map[string]any
	}{
		{
			name:        "no annotations",
			annotations: nil,
			want:        map[string]any{},
		},
		{
			name: "tag without facet lands in tag_ss",
			annotations: []domain.Annotation{
				{URI: "http://x/1", Tags: []domain.Concept{{ID: 1, PrefLabel: "red"}}},
			},
			want: map[string]any{"tag_ss": []string{"red"}},
		},
		{
			name: "tag with facet lands in facet field",
			annotations: []domain.Annotation{
				{URI: "http://x/1", Tags: []domain.Concept{{ID: 2, PrefLabel: "Berlin", Facet: location()}}},
			},
			want: map[string]any{"location_ss": []string{"Berlin"}},
		},
		{
			name: "no title and no notes omits both keys",
			annotations: []domain.Annotation{
				{URI: "http://x/1"},
			},
			want: map[string]any{},
		},
		{
			name: "last writer wins for title and notes",
			annotations: []domain.Annotation{
				{URI: "http://x/1", Title: "first", Notes: "first notes"},
				{URI: "http://x/1", Title: "second"},
			},
			want: map[string]any{"title_txt": "second", "notes_txt": "first notes"},
		},
		{
			name: "labels keep order and duplicates",
			annotations: []domain.Annotation{
				{URI: "http://x/1", Tags: []domain.Concept{{ID: 1, PrefLabel: "b"}, {ID: 2, PrefLabel: "a"}}},
				{URI: "http://x/1", Tags: []domain.Concept{{ID: 1, PrefLabel: "b"}}},
			},
			want: map[string]any{"tag_ss": []string{"b", "a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := projector.ProjectJSON(tt.annotations)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectJSON_Marshals(t *testing.T) {
	got := projector.ProjectJSON([]domain.Annotation{
		{URI: "http://x/1", Title: "Example", Tags: []domain.Concept{{ID: 1, PrefLabel: "red"}}},
	})

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title_txt":"Example","tag_ss":["red"]}`, string(body))
}

func TestReservedField(t *testing.T) {
	for _, name := range []string{"title_txt", "notes_txt", "id", "uri", "_text_", "text_txt_en", "etl_enhance_annotations_b"} {
		assert.True(t, projector.ReservedField(name), name)
	}
	for _, name := range []string{"tag_ss", "place_ss", "subject_ss", "text_ss", "etl"} {
		assert.False(t, projector.ReservedField(name), name)
	}
}

func TestProjectRDF(t *testing.T) {
	t.Run("title becomes schema title", func(t *testing.T) {
		g := projector.ProjectRDF([]domain.Annotation{{URI: "http://x/1", Title: "Example"}})

		assert.True(t, g.Contains("http://x/1", "http://schema.org/title", "Example"))
		assert.Equal(t, 1, g.Len())
	})

	t.Run("notes become schema Comment", func(t *testing.T) {
		g := projector.ProjectRDF([]domain.Annotation{{URI: "http://x/1", Notes: "some notes"}})

		assert.True(t, g.Contains("http://x/1", "http://schema.org/Comment", "some notes"))
	})

	t.Run("facet uri is the predicate", func(t *testing.T) {
		g := projector.ProjectRDF([]domain.Annotation{
			{URI: "http://x/1", Tags: []domain.Concept{{ID: 2, PrefLabel: "Berlin", Facet: location()}}},
		})

		assert.True(t, g.Contains("http://x/1", "http://ex.org/prop", "Berlin"))
		assert.False(t, g.Contains("http://x/1", projector.PredicateKeywords, "Berlin"))
	})

	t.Run("facet without uri falls back to keywords", func(t *testing.T) {
		facet := &domain.Facet{ID: 3, Name: "person_ss"}
		g := projector.ProjectRDF([]domain.Annotation{
			{URI: "http://x/1", Tags: []domain.Concept{{ID: 4, PrefLabel: "Ada", Facet: facet}}},
		})

		assert.True(t, g.Contains("http://x/1", "http://schema.org/keywords", "Ada"))
	})

	t.Run("duplicate triples collapse", func(t *testing.T) {
		g := projector.ProjectRDF([]domain.Annotation{
			{URI: "http://x/1", Title: "Same", Tags: []domain.Concept{{ID: 1, PrefLabel: "red"}, {ID: 1, PrefLabel: "red"}}},
			{URI: "http://x/1", Title: "Same"},
		})

		assert.Equal(t, 2, g.Len())
	})

	t.Run("every tag contributes one triple", func(t *testing.T) {
		g := projector.ProjectRDF([]domain.Annotation{
			{URI: "http://x/1", Tags: []domain.Concept{
				{ID: 1, PrefLabel: "red"},
				{ID: 2, PrefLabel: "Berlin", Facet: location()},
			}},
		})

		assert.Equal(t, 2, g.Len())
	})
}

func TestBuildIndexEnrichmentRequest(t *testing.T) {
	req := projector.BuildIndexEnrichmentRequest("http://x/1")

	assert.Equal(t, "http://x/1", req.DocumentID())
	assert.Equal(t, []string{"enhance_annotations", "enhance_multilingual"}, req.Plugins())
	assert.True(t, req.FailFast())
	assert.True(t, req.Add())
	assert.Equal(t, []string{
		"notes_txt",
		"etl_time_millis_i",
		"etl_enhance_annotations_b",
		"etl_enhance_annotations_time_millis_i",
		"etl_enhance_multilingual_b",
		"etl_enhance_multilingual_time_millis_i",
	}, req.FieldsSet())
}

func TestBuildIndexEnrichmentRequest_IsNotShared(t *testing.T) {
	first := projector.BuildIndexEnrichmentRequest("http://x/1")
	plugins := first.Plugins()
	plugins[0] = "changed"

	second := projector.BuildIndexEnrichmentRequest("http://x/2")

	assert.Equal(t, "enhance_annotations", first.Plugins()[0])
	assert.Equal(t, "enhance_annotations", second.Plugins()[0])
	assert.True(t, second.Overwrites("notes_txt"))
	assert.False(t, second.Overwrites("title_txt"))
}
