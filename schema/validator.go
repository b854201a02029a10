// Package schema validates decoded configuration against a JSON Schema.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Issue is one schema violation, located by JSON pointer.
type Issue struct {
	Pointer string `json:"pointer"`
	Message string `json:"message"`
}

// Issues lists every violation found in one document.
type Issues []Issue

func (is Issues) Error() string {
	lines := make([]string, 0, len(is)+1)
	lines = append(lines, "schema validation failed:")
	for _, i := range is {
		lines = append(lines, fmt.Sprintf("- %s: %s", i.Pointer, i.Message))
	}
	return strings.Join(lines, "\n")
}

// Validator checks documents against one compiled schema.
type Validator struct {
	compiled *jsonschema.Schema
}

// NewValidator compiles schemaData, registered under name.
func NewValidator(name string, schemaData []byte) (*Validator, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, bytes.NewReader(schemaData)); err != nil {
		return nil, fmt.Errorf("adding schema %s: %w", name, err)
	}
	compiled, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}
	return &Validator{compiled: compiled}, nil
}

// Validate round-trips doc through JSON and checks the result. Violations
// come back as Issues.
func (v *Validator) Validate(doc interface{}) error {
	plain, err := toPlain(doc)
	if err != nil {
		return err
	}

	err = v.compiled.Validate(plain)
	if err == nil {
		return nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	var issues Issues
	walk(verr, &issues)
	if len(issues) == 0 {
		issues = append(issues, Issue{Pointer: "/", Message: verr.Message})
	}
	return issues
}

// toPlain converts structs into the maps and slices the validator expects.
func toPlain(doc interface{}) (interface{}, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	var plain interface{}
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return plain, nil
}

// walk keeps the leaf causes, which carry the useful messages.
func walk(e *jsonschema.ValidationError, out *Issues) {
	if len(e.Causes) == 0 {
		ptr := e.InstanceLocation
		if ptr == "" {
			ptr = "/"
		}
		*out = append(*out, Issue{Pointer: ptr, Message: e.Message})
		return
	}
	for _, c := range e.Causes {
		walk(c, out)
	}
}
