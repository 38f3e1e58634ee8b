package domain

// DefaultTagField is the index field for tags whose concept has no facet.
const DefaultTagField = "tag_ss"

// Facet groups concepts. Name is the search index field the labels land in,
// URI is the RDF predicate used for them.
type Facet struct {
	ID   int64  `json:"id" yaml:"-"`
	Name string `json:"facet" yaml:"facet"`
	URI  string `json:"uri,omitempty" yaml:"uri"`
}

// HasURI reports whether the facet carries a predicate of its own.
func (f *Facet) HasURI() bool {
	return f != nil && f.URI != ""
}

// Concept is a controlled-vocabulary tag.
type Concept struct {
	ID        int64  `json:"id"`
	PrefLabel string `json:"pref_label"`
	Facet     *Facet `json:"facet,omitempty"`
}

// HasFacet reports whether the concept belongs to a facet.
func (c *Concept) HasFacet() bool {
	return c.Facet != nil
}

// Catalog is the importable form of the vocabulary.
type Catalog struct {
	Facets   []Facet          `yaml:"facets"`
	Concepts []CatalogConcept `yaml:"concepts"`
}

// CatalogConcept references its facet by name.
type CatalogConcept struct {
	PrefLabel string `yaml:"pref_label"`
	Facet     string `yaml:"facet"`
}

// CatalogImportResult counts what an import touched.
type CatalogImportResult struct {
	Facets   int `json:"facets"`
	Concepts int `json:"concepts"`
}
