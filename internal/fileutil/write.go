// Package fileutil holds the small file helpers the CLI leans on: reading
// line-oriented input and writing outputs without churning unchanged files.
package fileutil

import (
	"bytes"
	"os"
)

// WriteIfChanged writes data to path unless the file already holds exactly
// that content, keeping repeated runs from touching timestamps needlessly.
func WriteIfChanged(path string, data []byte) error {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
