package enrichment

import (
	"context"
	"sort"
	"strings"

	"annotate-service/app/domain"
	"annotate-service/app/projector"
	"annotate-service/app/utils/tokenize"
)

// Search fields written by enhance_multilingual.
const (
	FieldDefaultText    = projector.FieldDefaultText
	LanguageFieldPrefix = projector.LanguageFieldPrefix
)

// EnhanceMultilingual copies the annotation text into the default search
// field and into one text field per language.
type EnhanceMultilingual struct {
	languages []string
	tokenizer *tokenize.Tokenizer
}

// NewEnhanceMultilingual creates the enhance_multilingual plugin.
// tokenizer is required when languages contains "ja".
func NewEnhanceMultilingual(languages []string, tokenizer *tokenize.Tokenizer) *EnhanceMultilingual {
	return &EnhanceMultilingual{
		languages: append([]string(nil), languages...),
		tokenizer: tokenizer,
	}
}

func (p *EnhanceMultilingual) Name() string {
	return projector.PluginEnhanceMultilingual
}

func (p *EnhanceMultilingual) Apply(_ context.Context, _ string, doc domain.IndexDocument) error {
	texts := collectText(doc)
	if len(texts) == 0 {
		return nil
	}

	doc[FieldDefaultText] = texts
	for _, lang := range p.languages {
		values := texts
		if lang == "ja" && p.tokenizer != nil {
			values = make([]string, len(texts))
			for i, text := range texts {
				values[i] = p.tokenizer.Segment(text)
			}
		}
		doc[LanguageFieldPrefix+lang] = append([]string(nil), values...)
	}
	return nil
}

// collectText returns title, notes and then the tag fields in name order.
func collectText(doc domain.IndexDocument) []string {
	var texts []string
	for _, field := range []string{projector.FieldTitle, projector.FieldNotes} {
		if s, ok := doc[field].(string); ok && s != "" {
			texts = append(texts, s)
		}
	}

	var tagFields []string
	for field, value := range doc {
		if _, ok := value.([]string); !ok || isDerivedField(field) {
			continue
		}
		tagFields = append(tagFields, field)
	}
	sort.Strings(tagFields)

	for _, field := range tagFields {
		texts = append(texts, doc[field].([]string)...)
	}
	return texts
}

func isDerivedField(field string) bool {
	return field == FieldDefaultText ||
		strings.HasPrefix(field, LanguageFieldPrefix) ||
		strings.HasPrefix(field, projector.ETLFieldPrefix)
}
