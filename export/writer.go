package export

import (
	"os"
	"path/filepath"
)

// DirWriter writes artifacts into a directory on disk; the Go-native stand-in
// for browser download mechanics.
type DirWriter struct {
	Dir string
}

// WriteFile writes data under the configured directory.
func (w DirWriter) WriteFile(name string, data []byte) error {
	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	return os.WriteFile(filepath.Join(dir, name), data, 0644)
}
