package projector

import (
	"fmt"

	"annotate-service/app/domain"
)

// Format specifies an RDF serialization.
type Format string

const (
	// FormatRDFXML produces RDF/XML, the default export format.
	FormatRDFXML Format = "xml"

	// FormatTurtle produces Turtle.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples.
	FormatNTriples Format = "ntriples"
)

// FormatInfo provides metadata about a serialization.
type FormatInfo struct {
	Name     Format
	MIMEType string
}

// FormatRegistry contains all supported serializations.
var FormatRegistry = map[Format]FormatInfo{
	FormatRDFXML: {
		Name:     FormatRDFXML,
		MIMEType: "application/rdf+xml",
	},
	FormatTurtle: {
		Name:     FormatTurtle,
		MIMEType: "text/turtle",
	},
	FormatNTriples: {
		Name:     FormatNTriples,
		MIMEType: "application/n-triples",
	},
}

// ParseFormat resolves a format name. The empty name selects RDF/XML.
func ParseFormat(name string) (FormatInfo, error) {
	if name == "" {
		return FormatRegistry[FormatRDFXML], nil
	}
	info, ok := FormatRegistry[Format(name)]
	if !ok {
		return FormatInfo{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, name)
	}
	return info, nil
}

// Serialize writes the graph in the requested format.
func Serialize(g *Graph, format Format) ([]byte, error) {
	switch format {
	case FormatRDFXML:
		return MarshalRDFXML(g)
	case FormatTurtle:
		return []byte(marshalTurtle(g)), nil
	case FormatNTriples:
		return []byte(marshalNTriples(g)), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}
