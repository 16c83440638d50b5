// internal/connector/fields.go
package connector

import (
	"strconv"
	"strings"

	"crono-connector/internal/common/errors"
)

// Field-presence predicates. The same edge-case policy applies everywhere:
// empty string, false and 0 all mean "absent" on the wire.

// putString adds the key only when the value is non-empty.
func putString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

// putFlag adds the key only when the value is true. A false filter is
// indistinguishable from an unset one in the wire payload.
func putFlag(m map[string]any, key string, value bool) {
	if value {
		m[key] = true
	}
}

// putNumber adds the key only when the value is nonzero. Filtering by an
// exact zero cannot be expressed; the upstream mapping has the same gap.
func putNumber(m map[string]any, key string, value float64) {
	if value != 0 {
		m[key] = value
	}
}

// putObject attaches a parsed JSON object only when it has at least one key.
func putObject(m map[string]any, key string, value map[string]any) {
	if len(value) > 0 {
		m[key] = value
	}
}

// putArray attaches a parsed JSON array only when it has at least one element.
func putArray(m map[string]any, key string, value []any) {
	if len(value) > 0 {
		m[key] = value
	}
}

// splitList parses a comma-separated field into trimmed non-empty substrings.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// putList attaches a comma-separated string field as an array of trimmed
// non-empty substrings.
func putList(m map[string]any, key, raw string) {
	if values := splitList(raw); len(values) > 0 {
		m[key] = values
	}
}

// putIntList attaches a comma-separated numeric-ID field as an array of
// integers. Empty segments are dropped; a non-numeric segment fails with an
// INVALID_PARAMETER error naming the parameter and item index.
func putIntList(m map[string]any, key string, it Item, param string) error {
	raw := it.String(param, "")
	if raw == "" {
		return nil
	}
	parts := splitList(raw)
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return errors.NewInvalidParameterError(param, it.Index, err)
		}
		ids = append(ids, n)
	}
	if len(ids) > 0 {
		m[key] = ids
	}
	return nil
}

// mergeFields shallow-merges src into dst, overwriting existing keys. Used
// for the additional-fields overlay, which always wins over generated fields.
func mergeFields(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

// paramName derives the parameter name for a wire field. Prefixed parameters
// keep the field capitalized (companyName); import group entries use the bare
// lower-camel form (name, firstName).
func paramName(prefix, field string) string {
	if prefix == "" {
		return strings.ToLower(field[:1]) + field[1:]
	}
	return prefix + field
}
