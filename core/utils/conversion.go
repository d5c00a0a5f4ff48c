package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString converts various types to string.
// Whole floats decoded from JSON numbers are printed without a fraction.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case int:
		return v == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true"
	default:
		return false
	}
}

// StringField returns a pointer to the string form of data[key].
// A missing key or a JSON null yields nil; an empty string is returned as is.
func StringField(data map[string]any, key string) *string {
	if key == "" {
		return nil
	}
	v, ok := data[key]
	if !ok || v == nil {
		return nil
	}
	s := ToString(v)
	return &s
}

// BoolField reports the boolean value of data[key] and whether it was present.
func BoolField(data map[string]any, key string) (value, ok bool) {
	v, exists := data[key]
	if !exists || v == nil {
		return false, false
	}
	return ToBool(v), true
}

// ObjectField returns data[key] when it is a JSON object.
func ObjectField(data map[string]any, key string) map[string]any {
	if obj, ok := data[key].(map[string]any); ok {
		return obj
	}
	return nil
}
