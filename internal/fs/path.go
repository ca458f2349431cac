package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory reports that a path resolved to something other than
// a directory.
var ErrNotDirectory = errors.New("not a directory")

// Depth returns the number of path separators in the cleaned path.
// The filesystem root has depth 0.
func Depth(path string) int {
	clean := filepath.Clean(path)
	sep := string(filepath.Separator)
	if clean == sep {
		return 0
	}
	return strings.Count(clean, sep)
}

// CanonicalDir resolves path to a canonical absolute directory path,
// following symlinks.
func CanonicalDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}
	return resolved, nil
}
