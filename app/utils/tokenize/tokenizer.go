package tokenize

import (
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Tokenizer segments Japanese text into space separated words.
type Tokenizer struct {
	t *tokenizer.Tokenizer
}

// New loads the IPA dictionary. This takes a noticeable amount of memory,
// so only build one when Japanese is an enrichment language.
func New() (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Tokenizer{t: t}, nil
}

// ContainsJapanese reports whether text has hiragana, katakana or kanji.
func ContainsJapanese(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return true
		}
	}
	return false
}

// Segment returns text with Japanese words separated by single spaces.
// Text without Japanese characters is returned unchanged.
func (t *Tokenizer) Segment(text string) string {
	if !ContainsJapanese(text) {
		return text
	}

	words := make([]string, 0)
	for _, w := range t.t.Wakati(text) {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}
