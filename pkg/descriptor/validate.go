package descriptor

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// schema constrains the JSON rendering of a descriptor. It is deliberately
// strict about symbol shapes: generated audit files that drift from the C
// naming convention get rejected here instead of surfacing as a silent vtable
// mismatch much later.
const schema = `{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"type": "object",
	"required": ["name", "prefix", "goName", "operations"],
	"additionalProperties": false,
	"properties": {
		"name": {
			"type": "string",
			"pattern": "^[A-Za-z_][A-Za-z0-9_]*$"
		},
		"prefix": {
			"type": "string",
			"pattern": "^[a-z][a-z0-9]*$"
		},
		"goName": {
			"type": "string",
			"pattern": "^[A-Z][A-Za-z0-9]*$"
		},
		"operations": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "returns", "sideEffects"],
				"additionalProperties": false,
				"properties": {
					"name": {
						"type": "string",
						"pattern": "^[A-Za-z_][A-Za-z0-9_]*$"
					},
					"goName": {
						"type": "string",
						"pattern": "^[A-Z][A-Za-z0-9]*$"
					},
					"returns": {
						"type": "string",
						"minLength": 1
					},
					"sideEffects": {
						"type": "boolean"
					},
					"params": {
						"type": ["array", "null"],
						"items": {
							"type": "object",
							"required": ["name", "type"],
							"additionalProperties": false,
							"properties": {
								"name": {"type": "string", "minLength": 1},
								"type": {"type": "string", "minLength": 1}
							}
						}
					}
				}
			}
		}
	}
}`

// Validate checks the descriptor's JSON rendering against the audit schema
// and verifies that operation names are unique within the interface.
func Validate(i Interface) error {
	doc, err := i.JSON()
	if err != nil {
		return fmt.Errorf("descriptor %s: %w", i.Name, err)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("descriptor %s: %w", i.Name, err)
	}
	if !result.Valid() {
		return fmt.Errorf("descriptor %s: %v", i.Name, result.Errors())
	}

	seen := make(map[string]bool, len(i.Operations))
	for _, op := range i.Operations {
		if seen[op.Name] {
			return fmt.Errorf("descriptor %s: duplicate operation %s", i.Name, op.Name)
		}
		seen[op.Name] = true
	}
	return nil
}
