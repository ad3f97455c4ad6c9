package sources

import (
	"fmt"
	"strconv"
)

// Child returns m[key] as a mapping, degrading to an empty mapping.
func Child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	return map[string]any{}
}

// Items returns m[key] as a sequence, degrading to nil.
func Items(m map[string]any, key string) []any {
	if l, ok := m[key].([]any); ok {
		return l
	}
	return nil
}

// Text coerces a scalar payload value to a string. Mappings, sequences and
// nil degrade to the empty string.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// TextStrict coerces like Text but reports structured values as an error
// instead of degrading. Used for the fields resolution refuses to silently
// repair.
func TextStrict(v any, field string) (string, error) {
	switch v.(type) {
	case map[string]any, []any:
		return "", fmt.Errorf("field %q must be a scalar value, got %T", field, v)
	}
	return Text(v), nil
}

// Localized picks the fixed "de" variant from a localized mapping, or
// coerces the value directly when it is already a scalar.
func Localized(v any) string {
	if m, ok := v.(map[string]any); ok {
		return Text(m["de"])
	}
	return Text(v)
}

// Truthy reports whether a payload value counts as set: false for nil,
// false, zero numbers, empty strings and empty containers.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}
