package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func makeDir(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", name, err)
	}
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestScanExcludesHiddenByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".hidden")
	writeFile(t, dir, "visible")

	entries, err := NewDirScanner().Scan(dir, false)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	for _, e := range entries {
		if e.Name[0] == '.' {
			t.Errorf("hidden entry %q leaked into listing", e.Name)
		}
	}
	if len(entries) != 1 || entries[0].Name != "visible" {
		t.Fatalf("expected [visible], got %v", names(entries))
	}
}

func TestScanHiddenIsSuperset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".git")
	writeFile(t, dir, "README")
	makeDir(t, dir, ".cache")
	makeDir(t, dir, "src")

	scanner := NewDirScanner()
	without, err := scanner.Scan(dir, false)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	with, err := scanner.Scan(dir, true)
	if err != nil {
		t.Fatalf("scan hidden: %v", err)
	}

	seen := make(map[string]bool)
	for _, e := range with {
		seen[e.Name] = true
	}
	for _, e := range without {
		if !seen[e.Name] {
			t.Errorf("entry %q present without hidden but missing with hidden", e.Name)
		}
	}
	if len(with) != 4 {
		t.Fatalf("expected 4 entries with hidden, got %v", names(with))
	}
}

func TestScanSortsDirectoriesFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "aaa")
	makeDir(t, dir, "zzz")
	writeFile(t, dir, "bbb")
	makeDir(t, dir, "mmm")

	entries, err := NewDirScanner().Scan(dir, false)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	got := names(entries)
	want := []string{"mmm", "zzz", "aaa", "bbb"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestScanIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b")
	writeFile(t, dir, "a")
	makeDir(t, dir, "d")
	makeDir(t, dir, "c")

	scanner := NewDirScanner()
	first, err := scanner.Scan(dir, false)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	second, err := scanner.Scan(dir, false)
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestScanClassifiesKinds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file")
	makeDir(t, dir, "sub")
	if err := os.Symlink(filepath.Join(dir, "file"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	entries, err := NewDirScanner().Scan(dir, false)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	kinds := make(map[string]Kind)
	for _, e := range entries {
		kinds[e.Name] = e.Kind
	}
	if kinds["file"] != KindFile {
		t.Errorf("file kind = %v", kinds["file"])
	}
	if kinds["sub"] != KindDirectory {
		t.Errorf("sub kind = %v", kinds["sub"])
	}
	if kinds["link"] != KindSymlink {
		t.Errorf("link kind = %v", kinds["link"])
	}

	// Symlinks sort with files, after directories.
	if entries[0].Name != "sub" {
		t.Errorf("expected directory first, got %v", names(entries))
	}
}

func TestScanUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	if err := os.Mkdir(locked, 0o000); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	defer func() { _ = os.Chmod(locked, 0o755) }()

	entries, err := NewDirScanner().Scan(locked, false)
	if err == nil {
		t.Fatal("expected an error for unreadable directory")
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", names(entries))
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/", 0},
		{"/a", 1},
		{"/a/b", 2},
		{"/a/b/", 2},
		{"/usr/local/bin", 3},
	}

	for _, tt := range tests {
		if got := Depth(tt.path); got != tt.want {
			t.Errorf("Depth(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestCanonicalDirRejectsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain")

	if _, err := CanonicalDir(filepath.Join(dir, "plain")); err == nil {
		t.Fatal("expected error for a regular file")
	}
}

func TestCanonicalDirResolvesSymlinks(t *testing.T) {
	dir := t.TempDir()
	makeDir(t, dir, "real")
	link := filepath.Join(dir, "alias")
	if err := os.Symlink(filepath.Join(dir, "real"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	resolved, err := CanonicalDir(link)
	if err != nil {
		t.Fatalf("canonical: %v", err)
	}
	want, err := filepath.EvalSymlinks(filepath.Join(dir, "real"))
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if resolved != want {
		t.Fatalf("expected %q, got %q", want, resolved)
	}
}
