package state

import (
	fsutil "github.com/felipeagc/sf/internal/fs"
)

// SideView is the read-only preview of the directory highlighted by the
// active view's selection. It is derived state, recomputed whenever the
// selection or directory changes, and never mutated by navigation
// directly.
type SideView struct {
	Path    string
	Entries []fsutil.Entry
	Active  bool
}

// Refresh recomputes the preview from the view's current selection.
// When the selection is not a directory the preview deactivates and
// clears.
func (s *SideView) Refresh(scanner fsutil.Scanner, view *View, showHidden bool) {
	entry := view.SelectedEntry()
	if entry == nil || entry.Kind != fsutil.KindDirectory {
		s.Path = ""
		s.Entries = nil
		s.Active = false
		return
	}

	entries, err := scanner.Scan(entry.Path, showHidden)
	if err != nil {
		entries = nil
	}
	s.Path = entry.Path
	s.Entries = entries
	s.Active = true
}
