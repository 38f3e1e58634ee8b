package enrichment

import (
	"annotate-service/app/domain"
)

// Merge applies the fields produced by a run onto the stored document.
//
// Fields in the request's overwrite list replace the stored value. In add
// mode every other field is appended to, skipping values the stored field
// already holds, so a changed text scalar becomes a list of the stored and
// the produced value. Without add the produced value replaces the stored one.
// stored is not modified.
func Merge(stored, produced domain.IndexDocument, req domain.EnrichmentRequest) domain.IndexDocument {
	merged := make(domain.IndexDocument, len(stored)+len(produced))
	for field, value := range stored {
		merged[field] = value
	}

	for field, value := range produced {
		if req.Overwrites(field) {
			merged[field] = value
			continue
		}

		if !req.Add() {
			merged[field] = copyValue(value)
			continue
		}

		current, exists := stored[field]
		switch values := value.(type) {
		case []string:
			merged[field] = appendMissing(asStrings(current), values)
		case string:
			merged[field] = addScalar(current, exists, values)
		default:
			// Non-text values cannot be collected into a string list.
			merged[field] = value
		}
	}

	return merged
}

// addScalar keeps a single value while stored and produced agree and turns
// the field into a list once they differ.
func addScalar(current any, exists bool, value string) any {
	if !exists || current == nil {
		return value
	}
	if s, ok := current.(string); ok && s == value {
		return value
	}

	existing := asStrings(current)
	if len(existing) == 0 {
		return value
	}
	return appendMissing(existing, []string{value})
}

func copyValue(value any) any {
	if values, ok := value.([]string); ok {
		return append([]string(nil), values...)
	}
	return value
}

func appendMissing(current, values []string) []string {
	present := make(map[string]struct{}, len(current))
	for _, v := range current {
		present[v] = struct{}{}
	}

	out := append([]string(nil), current...)
	for _, v := range values {
		if _, ok := present[v]; ok {
			continue
		}
		out = append(out, v)
	}
	return out
}

func asStrings(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
