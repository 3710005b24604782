// Package textio renders line lists to disk without touching files
// whose content is already current, keeping source control quiet when
// generation is rerun.
package textio

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Join renders lines into file content with a trailing newline.
func Join(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// WriteIfChanged writes data to path unless the file already holds
// exactly that content. It reports whether a write happened.
func WriteIfChanged(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// WriteLinesIfChanged is WriteIfChanged over a rendered line list.
func WriteLinesIfChanged(path string, lines []string) (bool, error) {
	return WriteIfChanged(path, Join(lines))
}
