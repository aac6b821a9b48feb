package fileutil

import (
	"encoding/json"
	"io"
)

// EncodeJSON writes value as indented JSON to w.
func EncodeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// MarshalJSON renders value as indented JSON with a trailing newline,
// matching what EncodeJSON streams.
func MarshalJSON(value any) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
