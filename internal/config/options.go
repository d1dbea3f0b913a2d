package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed search_options.yaml
var defaultSearchOptions []byte

// CuisineOption is a single entry of the cuisine drop-down.
type CuisineOption struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// SearchOptions is the search form configuration loaded from YAML.
type SearchOptions struct {
	Cuisines        []CuisineOption `yaml:"cuisines"`
	PopularSearches []string        `yaml:"popular_searches"`
}

// LoadSearchOptions reads and parses a YAML search options file. An empty
// path yields the built-in defaults.
func LoadSearchOptions(path string) (*SearchOptions, error) {
	data := defaultSearchOptions
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read search options file: %w", err)
		}
		data = b
	}
	return parseSearchOptions(data)
}

func parseSearchOptions(data []byte) (*SearchOptions, error) {
	var opts SearchOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse search options YAML: %w", err)
	}
	for i, c := range opts.Cuisines {
		if c.Value == "" {
			return nil, fmt.Errorf("cuisine option %d has no value", i)
		}
		if c.Label == "" {
			opts.Cuisines[i].Label = c.Value
		}
	}
	return &opts, nil
}
