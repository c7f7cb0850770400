package reference

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a YAML catalog from path. Sections missing from the file
// (for example propertyTypes) are taken from the default catalog.
func LoadCatalog(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return DecodeCatalog(f)
}

// DecodeCatalog parses a YAML catalog from a reader.
func DecodeCatalog(r io.Reader) (Catalog, error) {
	var catalog Catalog
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultCatalog(), nil
		}
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}

	defaults := DefaultCatalog()
	if len(catalog.Cities) == 0 {
		catalog.Cities = defaults.Cities
	}
	if len(catalog.PropertyTypes) == 0 {
		catalog.PropertyTypes = defaults.PropertyTypes
	}

	if err := catalog.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}

// EncodeCatalog writes the catalog as YAML.
func EncodeCatalog(w io.Writer, catalog Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalog); err != nil {
		return err
	}
	return enc.Close()
}
