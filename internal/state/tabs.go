package state

import (
	"fmt"
	"os"

	fsutil "github.com/felipeagc/sf/internal/fs"
)

// TabSet owns the fixed collection of views, the shared side preview,
// and the process-wide hidden-file flag. Exactly one view is active at
// a time; the working directory follows the active view's path.
type TabSet struct {
	Views      []*View
	Side       SideView
	ShowHidden bool

	// Chdir is the working-directory side effect applied when the
	// active view's path changes. Overridable in tests.
	Chdir func(string) error

	// Status, when set, receives messages about navigation failures the
	// tab set absorbed. Navigation state is never altered by them.
	Status func(string)

	active  int
	scanner fsutil.Scanner
}

// NewTabSet creates count views rooted at root. The first view starts
// active; the process is assumed to already be in root.
func NewTabSet(scanner fsutil.Scanner, count int, root string, showHidden bool) *TabSet {
	if count < 1 {
		count = 1
	}

	t := &TabSet{
		ShowHidden: showHidden,
		Chdir:      os.Chdir,
		scanner:    scanner,
	}
	for i := 0; i < count; i++ {
		t.Views = append(t.Views, NewView(scanner, root, showHidden))
	}
	t.refreshPreview()
	return t
}

// Active returns the currently selected view.
func (t *TabSet) Active() *View {
	return t.Views[t.active]
}

// ActiveIndex returns the index of the active view.
func (t *TabSet) ActiveIndex() int {
	return t.active
}

// Activate switches to the view at index. The target view's entries are
// not re-scanned; the listing is whatever it was on last visit.
func (t *TabSet) Activate(index int) {
	if index < 0 || index >= len(t.Views) {
		return
	}
	t.active = index
	t.syncCwd()
	t.refreshPreview()
}

// MoveUp moves the active view's selection up and refreshes the preview
// when it moved.
func (t *TabSet) MoveUp() {
	v := t.Active()
	before := v.Selected
	v.MoveUp()
	if v.Selected != before {
		t.refreshPreview()
	}
}

// MoveDown moves the active view's selection down and refreshes the
// preview when it moved.
func (t *TabSet) MoveDown() {
	v := t.Active()
	before := v.Selected
	v.MoveDown()
	if v.Selected != before {
		t.refreshPreview()
	}
}

// Descend enters the selected directory in the active view.
func (t *TabSet) Descend() {
	if err := t.Active().Descend(t.ShowHidden); err != nil {
		t.report(fmt.Sprintf("cannot enter directory: %v", err))
		return
	}
	t.syncCwd()
	t.refreshPreview()
}

// Ascend moves the active view to its parent directory.
func (t *TabSet) Ascend() {
	if err := t.Active().Ascend(t.ShowHidden); err != nil {
		t.report(fmt.Sprintf("cannot enter directory: %v", err))
		return
	}
	t.syncCwd()
	t.refreshPreview()
}

// ToggleHidden flips hidden-file visibility for the whole process and
// re-scans the active view, keeping the selection by name.
func (t *TabSet) ToggleHidden() {
	t.ShowHidden = !t.ShowHidden
	t.Active().Rescan(t.ShowHidden)
	t.refreshPreview()
}

func (t *TabSet) refreshPreview() {
	t.Side.Refresh(t.scanner, t.Active(), t.ShowHidden)
}

func (t *TabSet) syncCwd() {
	if err := t.Chdir(t.Active().Path); err != nil {
		t.report(fmt.Sprintf("cannot chdir to %s: %v", t.Active().Path, err))
	}
}

func (t *TabSet) report(msg string) {
	if t.Status != nil {
		t.Status(msg)
	}
}
