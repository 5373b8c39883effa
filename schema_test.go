package carreltex

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"
)

// reportSchemaJSON pins the three-way report_json contract down as a JSON
// Schema so the fixed-literal strings compile.go emits can be checked against
// something other than a string comparison against themselves.
const reportSchemaJSON = `{
	"type": "object",
	"required": ["status", "missing_components"],
	"additionalProperties": false,
	"properties": {
		"status": {"enum": ["OK", "INVALID_INPUT", "NOT_IMPLEMENTED"]},
		"missing_components": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

const texStatsSchemaJSON = `{
	"type": "object",
	"required": [
		"token_count", "control_seq_count", "char_count", "space_count",
		"begin_group_count", "end_group_count", "max_group_depth"
	],
	"additionalProperties": false,
	"properties": {
		"token_count": {"type": "integer", "minimum": 0},
		"control_seq_count": {"type": "integer", "minimum": 0},
		"char_count": {"type": "integer", "minimum": 0},
		"space_count": {"type": "integer", "minimum": 0},
		"begin_group_count": {"type": "integer", "minimum": 0},
		"end_group_count": {"type": "integer", "minimum": 0},
		"max_group_depth": {"type": "integer", "minimum": 0}
	}
}`

func compileSchema(t *testing.T, schemaJSON, url string) *jsonschema.Schema {
	t.Helper()
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	require.NoError(t, compiler.AddResource(url, strings.NewReader(schemaJSON)))
	schema, err := compiler.Compile(url)
	require.NoError(t, err)
	return schema
}

func validateJSONDoc(t *testing.T, schema *jsonschema.Schema, doc string) error {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &v))
	return schema.Validate(v)
}

func TestReportJSON_MatchesSchemaForEveryStatus(t *testing.T) {
	schema := compileSchema(t, reportSchemaJSON, "schema://report.json")

	for _, status := range []Status{Ok, InvalidInput, NotImplemented} {
		require.NoError(t, validateJSONDoc(t, schema, reportJSON(status)), "status %s", status)
	}
}

func TestTexStatsJSON_MatchesSchema(t *testing.T) {
	schema := compileSchema(t, texStatsSchemaJSON, "schema://tex_stats.json")

	m := mustMount(t, map[string]string{
		"main.tex": "\\documentclass{article}\n\\begin{document}\nHi\n\\end{document}\n",
	})
	result := CompileMain(m)
	require.NoError(t, validateJSONDoc(t, schema, result.TexStatsJSON))
}
