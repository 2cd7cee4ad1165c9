// Package validator checks codec documents against the document schema
// before AST construction. It catches shape problems (wrong key types,
// multi-guard rules, malformed emitter specs) with suggestions, leaving
// guard syntax and emitter resolution to the parser.
package validator

import (
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	codecerrors "c2e-dev/c2e/pkg/codec/errors"
)

// documentSchema is the JSON Schema for codec documents. TARGET and RULES
// are required; RULES is a list of single-guard rules; every other top-level
// key declares a user-defined emitter as an ordered list of emitter specs.
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "codec document",
	"type": "object",
	"required": ["TARGET", "RULES"],
	"properties": {
		"TARGET": {"type": "string", "minLength": 1},
		"RULES": {
			"type": "array",
			"items": {
				"type": "object",
				"minProperties": 1,
				"maxProperties": 1,
				"additionalProperties": {"$ref": "#/definitions/emitterSpec"}
			}
		},
		"DEFAULT-EMITTER": {"$ref": "#/definitions/emitterSpec"}
	},
	"additionalProperties": {
		"type": "array",
		"items": {"$ref": "#/definitions/emitterSpec"}
	},
	"definitions": {
		"emitterSpec": {
			"oneOf": [
				{"type": "string"},
				{
					"type": "object",
					"required": ["emitter"],
					"properties": {"emitter": {"type": "string"}},
					"additionalProperties": false
				}
			]
		}
	}
}`

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	})
	return schema, schemaErr
}

// Validator validates codec document bytes against the document schema.
type Validator struct{}

// NewValidator creates a document validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks document bytes against the schema. sourcePath is used for
// error locations only. Violations of the required TARGET/RULES keys are
// reported as missing-key errors; every other violation is structural.
func (v *Validator) Validate(data []byte, sourcePath string) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &codecerrors.Error{
			Type:       codecerrors.ErrorTypeSyntax,
			Message:    fmt.Sprintf("document is not well-formed: %v", err),
			Location:   codecerrors.Location{File: sourcePath, Line: 1},
			Suggestion: "check YAML/JSON syntax (quoting, brackets, indentation)",
		}
	}

	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling document schema: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return &codecerrors.Error{
			Type:     codecerrors.ErrorTypeStructural,
			Message:  fmt.Sprintf("document cannot be validated: %v", err),
			Location: codecerrors.Location{File: sourcePath},
		}
	}
	if result.Valid() {
		return nil
	}

	errs := codecerrors.NewErrorList()
	for _, violation := range result.Errors() {
		errs.Add(schemaViolation(violation, sourcePath))
	}
	return errs.ToError()
}

// schemaViolation converts one schema violation into a typed codec error.
func schemaViolation(violation gojsonschema.ResultError, sourcePath string) *codecerrors.Error {
	loc := codecerrors.Location{File: sourcePath}

	if violation.Type() == "required" {
		if property, ok := violation.Details()["property"].(string); ok &&
			(property == "TARGET" || property == "RULES") {
			var example string
			if property == "TARGET" {
				example = `TARGET: "html"`
			} else {
				example = `RULES: [{"<": {emitter: HEX}}]`
			}
			return &codecerrors.Error{
				Type:       codecerrors.ErrorTypeMissingKey,
				Message:    fmt.Sprintf("codec document has no %s", property),
				Location:   loc,
				Suggestion: codecerrors.SuggestMissingKey(property, example),
			}
		}
	}

	return &codecerrors.Error{
		Type:     codecerrors.ErrorTypeStructural,
		Message:  fmt.Sprintf("%s: %s", violation.Field(), violation.Description()),
		Location: loc,
	}
}
