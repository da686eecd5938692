package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"widgetdash/internal/domain"
	"widgetdash/internal/logging"
)

//go:embed default_seed.json
var defaultSeed []byte

var log = logging.NewLogger("seed")

// ValidationError lists every problem found in a seed document
type ValidationError struct {
	Source   string
	Problems []string
}

func (e *ValidationError) Error() string {
	prefix := "invalid seed"
	if e.Source != "" {
		prefix = fmt.Sprintf("invalid seed %s", e.Source)
	}
	return fmt.Sprintf("%s:\n- %s", prefix, strings.Join(e.Problems, "\n- "))
}

// Default returns the built-in seed
func Default() ([]domain.Category, error) {
	categories, err := Parse(defaultSeed, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in seed: %w", err)
	}
	return categories, nil
}

// Format is the encoding of a seed document
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported seed format %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// LoadFile reads and validates a seed file. An empty path yields the built-in seed.
func LoadFile(path string) ([]domain.Category, error) {
	if path == "" {
		return Default()
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	categories, err := Parse(data, format)
	if err != nil {
		if verr, ok := err.(*ValidationError); ok {
			verr.Source = path
		}
		return nil, err
	}

	log.WithField("path", path).WithField("categories", len(categories)).Info("seed loaded")
	return categories, nil
}

// Parse decodes and validates a seed document. It fails on the first
// document that doesn't match the schema, reporting every problem found.
func Parse(data []byte, format Format) ([]domain.Category, error) {
	var doc interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse seed JSON: %w", err)
		}
	}

	// Normalise through JSON so YAML documents validate with the same types
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalise seed: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(normalized, &generic); err != nil {
		return nil, fmt.Errorf("failed to normalise seed: %w", err)
	}

	if err := validateShape(generic); err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := json.Unmarshal(normalized, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	if problems := checkIdentity(categories); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return categories, nil
}

// checkIdentity enforces what the schema can't express: category ids are
// unique, and widget ids are unique within their category.
func checkIdentity(categories []domain.Category) []string {
	var problems []string
	seenCategories := make(map[string]int)
	for i, c := range categories {
		if prev, dup := seenCategories[c.ID]; dup {
			problems = append(problems, fmt.Sprintf("/%d/id: duplicate category id %q (first at /%d)", i, c.ID, prev))
		} else {
			seenCategories[c.ID] = i
		}

		seenWidgets := make(map[string]int)
		for j, w := range c.Widgets {
			if prev, dup := seenWidgets[w.ID]; dup {
				problems = append(problems, fmt.Sprintf("/%d/widgets/%d/id: duplicate widget id %q in category %q (first at /%d/widgets/%d)", i, j, w.ID, c.ID, i, prev))
				continue
			}
			seenWidgets[w.ID] = j
		}
	}
	return problems
}
