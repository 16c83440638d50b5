// internal/connector/params.go
package connector

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"crono-connector/internal/common/errors"
)

// Item is one input item: a bag of named parameters plus its position in the
// batch. Items are independent of each other; every accessor is a pure read.
type Item struct {
	Index  int
	Params map[string]any
}

// String returns the named parameter as a string. Absent, nil, non-string and
// empty values all yield the default.
func (it Item) String(name, def string) string {
	value, ok := it.Params[name]
	if !ok || value == nil {
		return def
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return def
	}
	return s
}

// Bool returns the named parameter as a boolean, defaulting to false.
func (it Item) Bool(name string) bool {
	return it.BoolOr(name, false)
}

// BoolOr returns the named parameter as a boolean with an explicit default
// for absent values.
func (it Item) BoolOr(name string, def bool) bool {
	value, ok := it.Params[name]
	if !ok || value == nil {
		return def
	}
	b, ok := value.(bool)
	if !ok {
		return def
	}
	return b
}

// Int returns the named parameter as an int. JSON decoding delivers numbers
// as float64, so that is the primary case.
func (it Item) Int(name string, def int) int {
	value, ok := it.Params[name]
	if !ok || value == nil {
		return def
	}
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// Float returns the named parameter as a float64, defaulting on absence or
// type mismatch.
func (it Item) Float(name string, def float64) float64 {
	value, ok := it.Params[name]
	if !ok || value == nil {
		return def
	}
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

// Object returns a JSON-text parameter as a parsed object. Absent, nil and
// empty-string values yield an empty map, never a parse attempt. A string
// value is parsed as JSON; failure produces an INVALID_JSON_PARAMETER error
// naming the parameter and item index. An already-structured object passes
// through unchanged.
func (it Item) Object(name string) (map[string]any, error) {
	value, ok := it.Params[name]
	if !ok || value == nil {
		return map[string]any{}, nil
	}
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return map[string]any{}, nil
		}
		var parsed map[string]any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil, errors.NewInvalidJSONParameterError(name, it.Index, err)
		}
		return parsed, nil
	case map[string]any:
		return v, nil
	default:
		return nil, errors.NewInvalidJSONParameterError(name, it.Index,
			fmt.Errorf("expected a JSON object, got %T", value))
	}
}

// Array returns a JSON-text parameter as a parsed array, following the same
// coercion rules as Object.
func (it Item) Array(name string) ([]any, error) {
	value, ok := it.Params[name]
	if !ok || value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		var parsed []any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil, errors.NewInvalidJSONParameterError(name, it.Index, err)
		}
		return parsed, nil
	case []any:
		return v, nil
	default:
		return nil, errors.NewInvalidJSONParameterError(name, it.Index,
			fmt.Errorf("expected a JSON array, got %T", value))
	}
}

// Entries returns a repeatable-group parameter as a list of parameter bags.
// Non-object entries are skipped.
func (it Item) Entries(name string) []map[string]any {
	value, ok := it.Params[name]
	if !ok || value == nil {
		return nil
	}
	switch v := value.(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, entry := range v {
			if m, ok := entry.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// AdditionalFields flattens the user-editable {field, value} entry list into
// a plain map. Entries without a field name are skipped; a missing value
// defaults to the empty string; later duplicates overwrite earlier ones.
func (it Item) AdditionalFields() map[string]any {
	fields := map[string]any{}
	for _, entry := range it.Entries("additionalFields") {
		name, _ := entry["field"].(string)
		if name == "" {
			continue
		}
		value, ok := entry["value"]
		if !ok || value == nil {
			value = ""
		}
		fields[name] = value
	}
	return fields
}
