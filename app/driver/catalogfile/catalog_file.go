// Package catalogfile reads vocabulary files in YAML.
//
//	facets:
//	  - facet: place_ss
//	    uri: http://example.org/terms/place
//	concepts:
//	  - pref_label: Berlin
//	    facet: place_ss
//	  - pref_label: history
package catalogfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"annotate-service/app/domain"
)

// Decode reads one catalog document. Unknown keys are rejected.
func Decode(r io.Reader) (*domain.Catalog, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var catalog domain.Catalog
	if err := decoder.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return &catalog, nil
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return &catalog, nil
}

// Load reads the catalog file at path.
func Load(path string) (*domain.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	catalog, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}
