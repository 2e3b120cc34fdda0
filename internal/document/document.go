// Package document reads and writes the files edited by cmd/autolist.
package document

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/renameio"
)

const perm = 0o644

// Load returns the contents of path with CRLF and CR line endings
// normalized to LF. A missing file loads as empty text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n"), nil
}

// Save atomically replaces path with text. Readers observe either the old
// or the new contents, never a partial write.
func Save(path, text string) error {
	mode := os.FileMode(perm)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := renameio.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
