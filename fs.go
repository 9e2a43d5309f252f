package templatize

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// readTextFile reads a file and reports whether its bytes decode as text.
// Binary files are a soft skip for content transformation, never an error.
func readTextFile(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	if !utf8.Valid(data) {
		return "", false, nil
	}
	return string(data), true, nil
}

// ensureParentDir creates the destination's parent chain, needed when a
// whole-path rename targets a location that does not exist yet.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}
	return nil
}
