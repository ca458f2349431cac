package state

import (
	fsutil "github.com/felipeagc/sf/internal/fs"
	"github.com/felipeagc/sf/internal/spawn"
)

// Reducer applies actions to the tab set and surfaces launch requests
// for the application layer to execute.
type Reducer struct {
	opener []string
	editor []string
}

// NewReducer builds a reducer with the opener and editor command lines
// (program plus leading arguments).
func NewReducer(opener, editor []string) *Reducer {
	return &Reducer{opener: opener, editor: editor}
}

// Reduce applies one action to tabs. The returned request, when
// non-nil, must be executed by the caller; redraw reports whether the
// screen content may have changed.
func (r *Reducer) Reduce(tabs *TabSet, action Action) (request *spawn.Request, redraw bool) {
	switch a := action.(type) {
	case MoveUpAction:
		tabs.MoveUp()
		return nil, true

	case MoveDownAction:
		tabs.MoveDown()
		return nil, true

	case AscendAction:
		tabs.Ascend()
		return nil, true

	case DescendAction:
		tabs.Descend()
		return nil, true

	case ToggleHiddenAction:
		tabs.ToggleHidden()
		return nil, true

	case SelectTabAction:
		tabs.Activate(a.Index)
		return nil, true

	case OpenAction:
		entry := tabs.Active().SelectedEntry()
		if entry == nil || entry.Kind != fsutil.KindFile || len(r.opener) == 0 {
			return nil, false
		}
		return &spawn.Request{
			Program: r.opener[0],
			Args:    appendArg(r.opener[1:], entry.Path),
			Mode:    spawn.Detached,
		}, false

	case EditAction:
		entry := tabs.Active().SelectedEntry()
		if entry == nil || len(r.editor) == 0 {
			return nil, false
		}
		return &spawn.Request{
			Program: r.editor[0],
			Args:    appendArg(r.editor[1:], entry.Path),
			Mode:    spawn.Foreground,
		}, true

	case ResizeAction:
		return nil, true
	}

	return nil, false
}

func appendArg(args []string, arg string) []string {
	out := make([]string, len(args)+1)
	copy(out, args)
	out[len(args)] = arg
	return out
}
