package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toySchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(toySchema, `{"name": "resume", "count": 2}`))
}

func TestValidateJSONString_ReportsFieldErrors(t *testing.T) {
	err := ValidateJSONString(toySchema, `{"count": -1}`)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.NotEmpty(t, vErr.Errors)

	fields := make([]string, 0, len(vErr.Errors))
	for _, fe := range vErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "count")
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{not json`, `{}`)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(toySchema), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"name": "ok"}`), 0o644))

	assert.NoError(t, ValidateJSONFile(schemaPath, docPath))
}

func TestValidateJSONFile_MissingSchema(t *testing.T) {
	err := ValidateJSONFile(filepath.Join(t.TempDir(), "nope.json"), "also-missing.json")

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestResolveSchemaPath_FindsRepoSchema(t *testing.T) {
	path := ResolveSchemaPath("schemas/analysis_result.schema.json")
	require.NotEmpty(t, path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestResolveSchemaPath_MissingReturnsEmpty(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/no_such_schema.json"))
}
