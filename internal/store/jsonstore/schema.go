package jsonstore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Version is the envelope version written by Save.
const Version = 1

const todoDef = `{
	"type": "object",
	"required": ["id", "label", "checked"],
	"additionalProperties": false,
	"properties": {
		"id": {"type": "string", "pattern": "\\S"},
		"label": {"type": "string", "pattern": "\\S"},
		"checked": {"type": "boolean"}
	}
}`

// legacyTodoDef matches records written by the browser build, where ids
// were plain numbers.
const legacyTodoDef = `{
	"type": "object",
	"required": ["id", "label", "checked"],
	"properties": {
		"id": {"oneOf": [{"type": "string", "pattern": "\\S"}, {"type": "integer"}]},
		"label": {"type": "string", "pattern": "\\S"},
		"checked": {"type": "boolean"}
	}
}`

var (
	envelopeSchema = jsonschema.MustCompileString("https://todolist.local/schema/envelope.json", `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["version", "todos"],
	"additionalProperties": false,
	"properties": {
		"version": {"const": `+strconv.Itoa(Version)+`},
		"todos": {"type": "array", "items": `+todoDef+`}
	}
}`)

	legacySchema = jsonschema.MustCompileString("https://todolist.local/schema/legacy.json", `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": `+legacyTodoDef+`
}`)
)

// schemaFailure flattens a schema error to the first leaf cause and its path.
func schemaFailure(err error) (path string, cause error) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return "", err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return jsonPointerToPath(ve.InstanceLocation), fmt.Errorf("%s", ve.Message)
}

// jsonPointerToPath turns "/todos/0/label" into "todos[0].label".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
