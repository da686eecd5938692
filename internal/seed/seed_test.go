package seed

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgetdash/internal/domain"
)

func TestDefaultSeedIsValid(t *testing.T) {
	categories, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	for _, c := range categories {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
	}
	assert.Equal(t, "cspm-executive", categories[0].ID)
}

func TestParseJSON(t *testing.T) {
	doc := `[{"id":"cat-1","name":"Security","widgets":[{"id":"w1","name":"CVE Count","content":"12 critical","isVisible":true}]}]`

	categories, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{
		ID:      "cat-1",
		Name:    "Security",
		Widgets: []domain.Widget{{ID: "w1", Name: "CVE Count", Content: "12 critical", IsVisible: true}},
	}}, categories)
}

func TestParseYAML(t *testing.T) {
	doc := `
- id: cat-1
  name: Security
  widgets:
    - id: w1
      name: CVE Count
      content: 12 critical
      isVisible: false
- id: cat-2
  name: Empty
  widgets: []
`
	categories, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.False(t, categories[0].Widgets[0].IsVisible)
	assert.Empty(t, categories[1].Widgets)
}

func TestParseRejectsShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not an array", doc: `{"id":"cat-1"}`},
		{name: "missing widgets", doc: `[{"id":"cat-1","name":"Security"}]`},
		{name: "visibility is a string", doc: `[{"id":"c","name":"n","widgets":[{"id":"w","name":"x","content":"y","isVisible":"yes"}]}]`},
		{name: "unknown field", doc: `[{"id":"c","name":"n","widgets":[],"colour":"red"}]`},
		{name: "empty widget name", doc: `[{"id":"c","name":"n","widgets":[{"id":"w","name":"","content":"y","isVisible":true}]}]`},
		{name: "name too long", doc: `[{"id":"c","name":"n","widgets":[{"id":"w","name":"012345678901234567890123456789012345678901234567890","content":"y","isVisible":true}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatJSON)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.NotEmpty(t, verr.Problems)
		})
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	doc := `[
		{"id":"c","name":"One","widgets":[
			{"id":"w","name":"a","content":"b","isVisible":true},
			{"id":"w","name":"c","content":"d","isVisible":true}]},
		{"id":"c","name":"Two","widgets":[]}
	]`

	_, err := Parse([]byte(doc), FormatJSON)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 2)
	assert.Contains(t, err.Error(), `duplicate widget id "w"`)
	assert.Contains(t, err.Error(), `duplicate category id "c"`)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	_, err := Parse([]byte(`[`), FormatJSON)
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "seed.yml")
	require.NoError(t, os.WriteFile(good, []byte("- id: a\n  name: A\n  widgets: []\n"), 0o644))

	categories, err := LoadFile(good)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	bad := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"id":"a"}]`), 0o644))
	_, err = LoadFile(bad)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, bad, verr.Source)

	_, err = LoadFile(filepath.Join(dir, "seed.txt"))
	assert.ErrorContains(t, err, "unsupported seed format")

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read seed file")

	categories, err = LoadFile("")
	require.NoError(t, err)
	assert.NotEmpty(t, categories)
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "array", doc["type"])

	defs, ok := doc["$defs"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, defs, "Category")
	assert.Contains(t, defs, "Widget")
}
