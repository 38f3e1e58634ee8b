package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"annotate-service/app/domain"
)

func TestSanitizer_Line(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Example", "Example"},
		{"angle brackets kept", "Vector<float> vs List<int>", "Vector<float> vs List<int>"},
		{"markup kept as text", "<b>Bold</b> title", "<b>Bold</b> title"},
		{"entities not decoded", "&lt;b&gt; Fish &amp; Chips", "&lt;b&gt; Fish &amp; Chips"},
		{"whitespace collapsed", "  a \n\t b  ", "a b"},
		{"invalid utf8 replaced", "caf\xe9", "caf�"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Line(tt.in))
		})
	}
}

func TestSanitizer_Text(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comparison operators kept", "if a<b and c>d then swap", "if a<b and c>d then swap"},
		{"crlf normalised", "first line\r\nsecond line  ", "first line\nsecond line"},
		{"bare cr normalised", "a\rb", "a\nb"},
		{"blank lines squeezed", "a\n\n\n\n\nb", "a\n\nb"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Text(tt.in))
		})
	}
}

func TestSanitizer_AnnotationInput(t *testing.T) {
	s := New()
	tags := []int64{3, 1}
	in := domain.AnnotationInput{
		URI:    "  http://x/1?a=<b>  ",
		Title:  " <i>Example</i> ",
		Notes:  "a<b and c>d",
		TagIDs: tags,
	}

	got := s.AnnotationInput(in)

	assert.Equal(t, "http://x/1?a=<b>", got.URI)
	assert.Equal(t, "<i>Example</i>", got.Title)
	assert.Equal(t, "a<b and c>d", got.Notes)
	assert.Equal(t, []int64{3, 1}, got.TagIDs)

	got.TagIDs[0] = 99
	assert.Equal(t, int64(3), tags[0])
}
