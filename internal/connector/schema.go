// internal/connector/schema.go
package connector

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"crono-connector/internal/common/errors"
)

// itemSchema shapes the raw parameter bag before dispatch. It deliberately
// does not enum-check resource or operation: those failures belong to the
// dispatcher, which attributes them with the dedicated error codes.
var itemSchema = map[string]any{
	"type":     "object",
	"required": []string{"resource", "operation"},
	"properties": map[string]any{
		"resource":  map[string]any{"type": "string", "minLength": 1},
		"operation": map[string]any{"type": "string", "minLength": 1},
		"limit":     map[string]any{"type": "number"},
		"offset":    map[string]any{"type": "number"},
		"additionalFields": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"field": map[string]any{"type": "string"},
				},
			},
		},
		"useRawJsonSearch": map[string]any{"type": "boolean"},
		"useRawJsonData":   map[string]any{"type": "boolean"},
	},
}

var compiledItemSchema *gojsonschema.Schema

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(itemSchema))
	if err != nil {
		panic(fmt.Sprintf("item schema does not compile: %v", err))
	}
	compiledItemSchema = schema
}

// ValidateItem checks the structural shape of one parameter bag and returns
// an INPUT_VALIDATION_FAILED error listing every violation.
func ValidateItem(item Item) error {
	result, err := compiledItemSchema.Validate(gojsonschema.NewGoLoader(item.Params))
	if err != nil {
		return errors.NewInputValidationError(item.Index, []string{err.Error()})
	}
	if result.Valid() {
		return nil
	}
	messages := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		messages = append(messages, violation.String())
	}
	return errors.NewInputValidationError(item.Index, messages)
}
