package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects Config into the JSON Schema for stroke.yml.
// Property names follow the yaml tags. Unknown top-level keys stay legal so
// extension sections such as `logging` validate.
func GenerateSchema() ([]byte, error) {
	s := (&jsonschema.Reflector{
		FieldNameTag:              "yaml",
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}).Reflect(&Config{})

	s.Version = "http://json-schema.org/draft-07/schema#"
	s.Title = "Stroke Configuration"
	s.Description = "Layouts, keyboard TUI and WebSocket server settings for the stroke gesture keyboard."
	return json.MarshalIndent(s, "", "  ")
}
