package catalogfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annotate-service/app/domain"
)

const sampleCatalog = `
facets:
  - facet: place_ss
    uri: http://example.org/terms/place
  - facet: subject_ss
concepts:
  - pref_label: Berlin
    facet: place_ss
  - pref_label: history
`

func TestDecode(t *testing.T) {
	catalog, err := Decode(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, []domain.Facet{
		{Name: "place_ss", URI: "http://example.org/terms/place"},
		{Name: "subject_ss"},
	}, catalog.Facets)
	assert.Equal(t, []domain.CatalogConcept{
		{PrefLabel: "Berlin", Facet: "place_ss"},
		{PrefLabel: "history"},
	}, catalog.Concepts)
}

func TestDecode_Empty(t *testing.T) {
	catalog, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, catalog.Facets)
	assert.Empty(t, catalog.Concepts)
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("facets:\n  - name: place_ss\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	catalog, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, catalog.Concepts, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
