package studyhall

import (
	"encoding/json"
	"fmt"
)

// RenderValue normalizes a generation result for display. Strings pass
// through untouched, structured values render as indented JSON, and
// anything that cannot be marshaled is stringified as a last resort.
func RenderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		if data, err := json.MarshalIndent(v, "", "  "); err == nil {
			return string(data)
		}
		return fmt.Sprint(v)
	}
}

// stringValue coerces a decoded JSON value to a display string. Nested
// values are stringified rather than dropped.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// firstField returns the first non-empty string among the named fields
// of a decoded JSON object, trying keys in order.
func firstField(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			if s := stringValue(v); s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// stringSlice converts a decoded JSON array to strings, stringifying
// non-string elements.
func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, stringValue(item))
	}
	return out
}
