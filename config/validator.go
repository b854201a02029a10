package config

import (
	"sync"

	"github.com/grovetools/stroke/schema"
)

var (
	validatorOnce sync.Once
	validator     *SchemaValidator
	validatorErr  error
)

// SchemaValidator validates a Config against the schema generated from its type.
type SchemaValidator struct {
	v *schema.Validator
}

// NewSchemaValidator returns the shared validator, compiling it on first use.
func NewSchemaValidator() (*SchemaValidator, error) {
	validatorOnce.Do(func() {
		data, err := GenerateSchema()
		if err != nil {
			validatorErr = err
			return
		}
		v, err := schema.NewValidator("stroke.schema.json", data)
		if err != nil {
			validatorErr = err
			return
		}
		validator = &SchemaValidator{v: v}
	})
	return validator, validatorErr
}

// Validate checks configData against the schema.
func (sv *SchemaValidator) Validate(configData interface{}) error {
	return sv.v.Validate(configData)
}
