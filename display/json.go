package display

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders v indented, without HTML escaping so argument labels
// such as a<b survive verbatim. No trailing newline.
func MarshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
