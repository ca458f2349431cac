package state

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	fsutil "github.com/felipeagc/sf/internal/fs"
)

// fakeScanner serves synthetic listings keyed by directory path. Hidden
// filtering matches the real scanner; listing order is taken as given.
type fakeScanner struct {
	dirs       map[string][]fsutil.Entry
	unreadable map[string]bool
	calls      map[string]int
}

func (f *fakeScanner) Scan(dir string, showHidden bool) ([]fsutil.Entry, error) {
	if f.calls != nil {
		f.calls[dir]++
	}
	if f.unreadable[dir] {
		return nil, errors.New("permission denied")
	}
	entries, ok := f.dirs[dir]
	if !ok {
		return nil, errors.New("no such directory")
	}

	out := make([]fsutil.Entry, 0, len(entries))
	for _, e := range entries {
		if !showHidden && strings.HasPrefix(e.Name, ".") {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// useFakeFilesystem points path canonicalization at the fake: any path
// that is a key in dirs is a directory, everything else fails.
func useFakeFilesystem(t *testing.T, f *fakeScanner) {
	t.Helper()
	prev := canonicalDirFn
	canonicalDirFn = func(path string) (string, error) {
		clean := filepath.Clean(path)
		_, isDir := f.dirs[clean]
		if !isDir && !f.unreadable[clean] {
			return "", fmt.Errorf("%s: %w", path, fsutil.ErrNotDirectory)
		}
		return clean, nil
	}
	t.Cleanup(func() { canonicalDirFn = prev })
}

func dirEntry(parent, name string) fsutil.Entry {
	return fsutil.Entry{Name: name, Path: filepath.Join(parent, name), Kind: fsutil.KindDirectory}
}

func fileEntry(parent, name string) fsutil.Entry {
	return fsutil.Entry{Name: name, Path: filepath.Join(parent, name), Kind: fsutil.KindFile}
}
