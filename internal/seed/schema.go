package seed

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"widgetdash/internal/domain"
)

const schemaResource = "widgetdash-seed.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Schema returns the JSON Schema describing a seed document: an array of
// categories, each owning an array of widgets.
func Schema() *invopop.Schema {
	r := &invopop.Reflector{
		AllowAdditionalProperties: false,
	}
	category := r.Reflect(&domain.Category{})

	return &invopop.Schema{
		Version:     invopop.Version,
		Title:       "Widget Dashboard Seed",
		Description: "Categories and widgets the dashboard starts from.",
		Type:        "array",
		Items:       &invopop.Schema{Ref: "#/$defs/Category"},
		Definitions: category.Definitions,
	}
}

// SchemaJSON returns the seed schema as indented JSON
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal seed schema: %w", err)
	}
	return data, nil
}

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		data, err := SchemaJSON()
		if err != nil {
			compileErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaResource, strings.NewReader(string(data))); err != nil {
			compileErr = fmt.Errorf("failed to add seed schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaResource)
		if compileErr != nil {
			compileErr = fmt.Errorf("failed to compile seed schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateShape checks a decoded JSON value against the seed schema
func validateShape(doc interface{}) error {
	schema, err := compiled()
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			problems := []string{}
			collectErrors(verr, &problems)
			return &ValidationError{Problems: problems}
		}
		return fmt.Errorf("seed schema validation failed: %w", err)
	}
	return nil
}

// collectErrors flattens the leaf causes of a validation error
func collectErrors(err *jsonschema.ValidationError, problems *[]string) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*problems = append(*problems, fmt.Sprintf("%s: %s", loc, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, problems)
	}
}
