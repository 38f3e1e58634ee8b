package projector

import (
	"fmt"
	"strings"
)

// marshalNTriples writes one line per triple.
func marshalNTriples(g *Graph) string {
	var sb strings.Builder
	for _, t := range g.Triples() {
		sb.WriteString(fmt.Sprintf("<%s> <%s> \"%s\" .\n", escapeIRI(t.Subject), escapeIRI(t.Predicate), escapeLiteral(t.Object)))
	}
	return sb.String()
}

// marshalTurtle groups predicates under their subject.
func marshalTurtle(g *Graph) string {
	var sb strings.Builder

	triples := g.Triples()
	for i, t := range triples {
		if i == 0 || triples[i-1].Subject != t.Subject {
			sb.WriteString(fmt.Sprintf("<%s>\n", escapeIRI(t.Subject)))
		}

		terminator := " ;"
		if i == len(triples)-1 || triples[i+1].Subject != t.Subject {
			terminator = " .\n"
		}
		sb.WriteString(fmt.Sprintf("    <%s> \"%s\"%s\n", escapeIRI(t.Predicate), escapeLiteral(t.Object), terminator))
	}

	return sb.String()
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

var iriEscaper = strings.NewReplacer(
	"<", "%3C",
	">", "%3E",
	`"`, "%22",
	" ", "%20",
	"{", "%7B",
	"}", "%7D",
	"|", "%7C",
	`\`, "%5C",
	"^", "%5E",
	"`", "%60",
)

// escapeIRI percent-encodes the characters N-Triples forbids inside IRIs.
func escapeIRI(s string) string {
	return iriEscaper.Replace(s)
}
