package projector

import (
	"encoding/xml"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

const rdfNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// ErrUnsplittablePredicate is returned when a predicate IRI has no local
// part that is a valid XML name, which RDF/XML cannot express.
var ErrUnsplittablePredicate = errors.New("predicate cannot be written as an XML qualified name")

var wellKnownPrefixes = map[string]string{
	rdfNamespace:                           "rdf",
	"http://schema.org/":                   "schema",
	"http://purl.org/dc/terms/":            "dcterms",
	"http://purl.org/dc/elements/1.1/":     "dc",
	"http://www.w3.org/2004/02/skos/core#": "skos",
}

// MarshalRDFXML serializes the graph as RDF/XML with one rdf:Description
// per subject.
func MarshalRDFXML(g *Graph) ([]byte, error) {
	triples := g.Triples()

	prefixes, err := assignPrefixes(triples)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString("<rdf:RDF\n")

	namespaces := make([]string, 0, len(prefixes))
	for ns := range prefixes {
		namespaces = append(namespaces, ns)
	}
	sort.Slice(namespaces, func(i, j int) bool {
		return prefixes[namespaces[i]] < prefixes[namespaces[j]]
	})
	for _, ns := range namespaces {
		sb.WriteString("   xmlns:")
		sb.WriteString(prefixes[ns])
		sb.WriteString(`="`)
		escapeXML(&sb, ns)
		sb.WriteString("\"\n")
	}
	sb.WriteString(">\n")

	subject := ""
	for i, t := range triples {
		if i == 0 || t.Subject != subject {
			if i > 0 {
				sb.WriteString("  </rdf:Description>\n")
			}
			subject = t.Subject
			sb.WriteString(`  <rdf:Description rdf:about="`)
			escapeXML(&sb, subject)
			sb.WriteString("\">\n")
		}

		ns, local, _ := splitIRI(t.Predicate)
		qname := prefixes[ns] + ":" + local
		sb.WriteString("    <")
		sb.WriteString(qname)
		sb.WriteString(">")
		escapeXML(&sb, t.Object)
		sb.WriteString("</")
		sb.WriteString(qname)
		sb.WriteString(">\n")
	}
	if len(triples) > 0 {
		sb.WriteString("  </rdf:Description>\n")
	}

	sb.WriteString("</rdf:RDF>\n")
	return []byte(sb.String()), nil
}

// assignPrefixes maps every namespace used by a predicate to a prefix.
// Unknown namespaces get ns1, ns2, ... in namespace order.
func assignPrefixes(triples []Triple) (map[string]string, error) {
	prefixes := map[string]string{rdfNamespace: "rdf"}
	unknown := make([]string, 0)

	for _, t := range triples {
		ns, _, ok := splitIRI(t.Predicate)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsplittablePredicate, t.Predicate)
		}
		if _, seen := prefixes[ns]; seen {
			continue
		}
		if prefix, known := wellKnownPrefixes[ns]; known {
			prefixes[ns] = prefix
			continue
		}
		prefixes[ns] = ""
		unknown = append(unknown, ns)
	}

	sort.Strings(unknown)
	for i, ns := range unknown {
		prefixes[ns] = fmt.Sprintf("ns%d", i+1)
	}

	return prefixes, nil
}

// splitIRI splits an IRI into namespace and the longest suffix that is a
// valid XML local name.
func splitIRI(iri string) (namespace, local string, ok bool) {
	runes := []rune(iri)

	i := len(runes)
	for i > 0 && isNameChar(runes[i-1]) {
		i--
	}
	for i < len(runes) && !isNameStartChar(runes[i]) {
		i++
	}
	if i == 0 || i == len(runes) {
		return "", "", false
	}

	return string(runes[:i]), string(runes[i:]), true
}

// ValidPredicateIRI reports whether iri can be used as an RDF/XML predicate.
func ValidPredicateIRI(iri string) bool {
	_, _, ok := splitIRI(iri)
	return ok
}

func isNameStartChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return isNameStartChar(r) || unicode.IsDigit(r) || r == '-' || r == '.'
}

func escapeXML(sb *strings.Builder, s string) {
	// strings.Builder never fails to write
	_ = xml.EscapeText(sb, []byte(s))
}
