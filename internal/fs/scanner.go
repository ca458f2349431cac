package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Scanner lists the children of a directory. It is the injectable
// listing capability; tests substitute a synthetic implementation.
type Scanner interface {
	Scan(dir string, showHidden bool) ([]Entry, error)
}

// DirScanner reads directories from the local filesystem. Directories
// sort before everything else; within a kind bucket names compare with
// locale-aware collation.
type DirScanner struct {
	collator *collate.Collator
}

// NewDirScanner builds a scanner collating with the locale from the
// environment.
func NewDirScanner() *DirScanner {
	return &DirScanner{collator: collate.New(systemLocale())}
}

func systemLocale() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		v := os.Getenv(env)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return tag
		}
	}
	return language.Und
}

// Scan lists dir, excluding dotfiles unless showHidden is set. The "."
// and ".." pseudo-entries never appear.
func (s *DirScanner) Scan(dir string, showHidden bool) ([]Entry, error) {
	list, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(list))
	for _, de := range list {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		kind := KindUnknown
		switch {
		case de.IsDir():
			kind = KindDirectory
		case de.Type().IsRegular():
			kind = KindFile
		case de.Type()&os.ModeSymlink != 0:
			kind = KindSymlink
		}

		entries = append(entries, Entry{
			Name: norm.NFC.String(name),
			Path: filepath.Join(dir, name),
			Kind: kind,
		})
	}

	s.sortEntries(entries)
	return entries, nil
}

func (s *DirScanner) sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		return s.collator.CompareString(a.Name, b.Name) < 0
	})
}
