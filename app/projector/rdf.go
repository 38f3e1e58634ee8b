package projector

import (
	"sort"

	"annotate-service/app/domain"
)

// Predicates used by the RDF projection.
const (
	PredicateTitle    = "http://schema.org/title"
	PredicateComment  = "http://schema.org/Comment"
	PredicateKeywords = "http://schema.org/keywords"
)

// Triple is a statement whose subject and predicate are IRIs and whose
// object is a plain literal.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// Graph is a set of triples. Adding a triple twice keeps one copy.
type Graph struct {
	triples map[Triple]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{triples: make(map[Triple]struct{})}
}

// Add inserts a triple.
func (g *Graph) Add(subject, predicate, object string) {
	g.triples[Triple{Subject: subject, Predicate: predicate, Object: object}] = struct{}{}
}

// Contains reports whether the triple is in the graph.
func (g *Graph) Contains(subject, predicate, object string) bool {
	_, ok := g.triples[Triple{Subject: subject, Predicate: predicate, Object: object}]
	return ok
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the triples sorted by subject, predicate and object so
// serializations are stable.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		if out[i].Predicate != out[j].Predicate {
			return out[i].Predicate < out[j].Predicate
		}
		return out[i].Object < out[j].Object
	})
	return out
}

// ProjectRDF builds the graph for the given annotations. The annotation uri
// is the subject of every triple. A tag uses its facet uri as predicate when
// the facet has one, schema:keywords otherwise.
func ProjectRDF(annotations []domain.Annotation) *Graph {
	g := NewGraph()

	for _, annotation := range annotations {
		if annotation.HasTitle() {
			g.Add(annotation.URI, PredicateTitle, annotation.Title)
		}

		if annotation.HasNotes() {
			g.Add(annotation.URI, PredicateComment, annotation.Notes)
		}

		for _, tag := range annotation.Tags {
			g.Add(annotation.URI, TagPredicate(tag), tag.PrefLabel)
		}
	}

	return g
}

// TagPredicate returns the predicate a tag's label is asserted with.
func TagPredicate(tag domain.Concept) string {
	if tag.HasFacet() && tag.Facet.HasURI() {
		return tag.Facet.URI
	}
	return PredicateKeywords
}
