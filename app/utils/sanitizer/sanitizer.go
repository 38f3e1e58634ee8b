// Package sanitizer normalises annotation submissions before they are
// validated and stored. Text is kept as entered: every export escapes it for
// its own format, so markup characters are data here.
package sanitizer

import (
	"regexp"
	"strings"

	"annotate-service/app/domain"
)

var (
	spaceRe     = regexp.MustCompile(`\s+`)
	blankLineRe = regexp.MustCompile(`\n{3,}`)
)

// Sanitizer normalises whitespace in free-text fields.
type Sanitizer struct{}

func New() *Sanitizer {
	return &Sanitizer{}
}

// AnnotationInput returns a cleaned copy of input. The uri is only trimmed
// since it is matched exactly everywhere else. Tag ids are copied untouched.
func (s *Sanitizer) AnnotationInput(input domain.AnnotationInput) domain.AnnotationInput {
	return domain.AnnotationInput{
		URI:    strings.TrimSpace(input.URI),
		Title:  s.Line(input.Title),
		Notes:  s.Text(input.Notes),
		TagIDs: append([]int64(nil), input.TagIDs...),
	}
}

// Line collapses all whitespace to single spaces.
func (s *Sanitizer) Line(raw string) string {
	if raw == "" {
		return ""
	}
	text := strings.ToValidUTF8(raw, "�")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// Text normalises line endings and trailing blanks, squeezing runs of blank
// lines.
func (s *Sanitizer) Text(raw string) string {
	if raw == "" {
		return ""
	}
	text := strings.ToValidUTF8(raw, "�")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text = blankLineRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text)
}
