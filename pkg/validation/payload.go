package validation

import (
	"bytes"
	"encoding/json"
)

// IsStructured reports whether raw is a JSON array or object. The
// project code payload is opaque but must be structured, never a
// scalar.
func IsStructured(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{')
}

// IsNull reports whether raw is the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
