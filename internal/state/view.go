package state

import (
	"path/filepath"

	"golang.org/x/text/unicode/norm"

	fsutil "github.com/felipeagc/sf/internal/fs"
)

// canonicalDirFn mirrors fs.CanonicalDir but is overridable in tests.
var canonicalDirFn = fsutil.CanonicalDir

// View is one tab's navigation state: the current directory, the
// selection into its listing, and a depth-indexed stack of remembered
// scroll offsets.
type View struct {
	Path     string
	Selected int
	Entries  []fsutil.Entry

	// Offsets keeps one scroll offset per directory depth, not per
	// path: two directories at the same depth share a slot. The stack
	// grows as the view descends and never shrinks.
	Offsets []int

	scanErr error
	scanner fsutil.Scanner
}

// NewView roots a view at path. If path cannot be entered the view
// falls back to the filesystem root.
func NewView(scanner fsutil.Scanner, path string, showHidden bool) *View {
	v := &View{scanner: scanner}
	if err := v.SetPath(path, showHidden); err != nil {
		_ = v.SetPath(string(filepath.Separator), showHidden)
	}
	v.growOffsets()
	return v
}

// growOffsets ensures a slot exists for every depth up to the current
// depth plus one, so descending starts with a fresh zero offset.
func (v *View) growOffsets() {
	need := fsutil.Depth(v.Path) + 2
	for len(v.Offsets) < need {
		v.Offsets = append(v.Offsets, 0)
	}
}

// SetPath navigates the view to dir. On failure the view is left
// untouched.
func (v *View) SetPath(dir string, showHidden bool) error {
	canonical, err := canonicalDirFn(dir)
	if err != nil {
		return err
	}
	v.Path = canonical
	v.rescan(showHidden)
	v.growOffsets()
	return nil
}

func (v *View) rescan(showHidden bool) {
	entries, err := v.scanner.Scan(v.Path, showHidden)
	if err != nil {
		entries = nil
	}
	v.Entries = entries
	v.scanErr = err

	if len(v.Entries) <= 1 {
		v.SetSelection(0)
	} else if v.Selected >= len(v.Entries) {
		v.SetSelection(len(v.Entries) - 1)
	}
}

// SetSelection clamps index into the current listing and stores it.
// Changing the selection invalidates the remembered scroll offset one
// level deeper: the side preview and an eventual descent start
// unscrolled.
func (v *View) SetSelection(index int) {
	if index >= len(v.Entries) {
		index = len(v.Entries) - 1
	}
	if index < 0 {
		index = 0
	}
	v.Selected = index

	v.growOffsets()
	v.Offsets[fsutil.Depth(v.Path)+1] = 0
}

// MoveUp moves the selection up one entry, stopping at the first.
func (v *View) MoveUp() {
	if v.Selected > 0 {
		v.SetSelection(v.Selected - 1)
	}
}

// MoveDown moves the selection down one entry, stopping at the last.
func (v *View) MoveDown() {
	if v.Selected < len(v.Entries)-1 {
		v.SetSelection(v.Selected + 1)
	}
}

// SelectedEntry returns the highlighted entry, or nil for an empty
// listing.
func (v *View) SelectedEntry() *fsutil.Entry {
	if len(v.Entries) == 0 {
		return nil
	}
	return &v.Entries[v.Selected]
}

// Descend enters the selected entry when it is a directory and places
// the selection on its first entry.
func (v *View) Descend(showHidden bool) error {
	entry := v.SelectedEntry()
	if entry == nil || entry.Kind != fsutil.KindDirectory {
		return nil
	}
	if err := v.SetPath(entry.Path, showHidden); err != nil {
		return err
	}
	v.SetSelection(0)
	return nil
}

// Ascend moves to the parent directory and re-selects the child the
// view came from, falling back to the first entry when it is gone.
func (v *View) Ascend(showHidden bool) error {
	parent := filepath.Dir(v.Path)
	if parent == v.Path {
		return nil
	}
	leaf := norm.NFC.String(filepath.Base(v.Path))

	if err := v.SetPath(parent, showHidden); err != nil {
		return err
	}

	idx := 0
	for i, e := range v.Entries {
		if e.Name == leaf {
			idx = i
			break
		}
	}
	v.SetSelection(idx)
	return nil
}

// Rescan reloads the listing and keeps the selection on the same entry
// name when it is still present, falling back to the first entry.
func (v *View) Rescan(showHidden bool) {
	var name string
	if entry := v.SelectedEntry(); entry != nil {
		name = entry.Name
	}

	v.rescan(showHidden)

	idx := 0
	for i, e := range v.Entries {
		if e.Name == name {
			idx = i
			break
		}
	}
	v.SetSelection(idx)
}

// ClampOffset corrects the current depth's scroll offset so the
// selection stays inside a pane of the given height, and returns it.
func (v *View) ClampOffset(height int) int {
	v.growOffsets()
	depth := fsutil.Depth(v.Path)

	offset := v.Offsets[depth]
	if v.Selected < offset {
		offset = v.Selected
	}
	if height > 0 && v.Selected >= offset+height-1 {
		offset = v.Selected - height + 2
	}
	if offset < 0 {
		offset = 0
	}

	v.Offsets[depth] = offset
	return offset
}

// ScanError reports why the last scan produced no entries. A nil error
// with zero entries means the directory really is empty.
func (v *View) ScanError() error {
	return v.scanErr
}
