package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"job_patch.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	data, err := os.ReadFile("job_patch.schema.json")
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	err = json.Unmarshal(data, &schemaObj)
	require.NoError(t, err)

	_, hasType := schemaObj["type"]
	_, hasSchema := schemaObj["$schema"]
	_, hasProps := schemaObj["properties"]

	assert.True(t, hasType && hasSchema && hasProps,
		"schema should declare type, $schema and properties")
}
