package llm

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of T, inlined and closed to extra
// properties, for embedding in a prompt. Fields without omitempty are
// required.
func Schema[T any]() string {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	data, err := json.MarshalIndent(r.Reflect(v), "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
