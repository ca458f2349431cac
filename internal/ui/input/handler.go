package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/felipeagc/sf/internal/config"
	statepkg "github.com/felipeagc/sf/internal/state"
)

// Handler translates tcell events into navigation actions according to
// the configured keymap.
type Handler struct {
	bindings map[rune]statepkg.Action
}

// NewHandler builds a handler from the keymap. Only the first rune of
// each binding is used.
func NewHandler(keys config.Keymap) *Handler {
	h := &Handler{bindings: make(map[rune]statepkg.Action)}
	h.bind(keys.Up, statepkg.MoveUpAction{})
	h.bind(keys.Down, statepkg.MoveDownAction{})
	h.bind(keys.Backward, statepkg.AscendAction{})
	h.bind(keys.Forward, statepkg.DescendAction{})
	h.bind(keys.Open, statepkg.OpenAction{})
	h.bind(keys.Edit, statepkg.EditAction{})
	h.bind(keys.ToggleHidden, statepkg.ToggleHiddenAction{})
	h.bind(keys.Quit, statepkg.QuitAction{})
	return h
}

func (h *Handler) bind(key string, action statepkg.Action) {
	runes := []rune(key)
	if len(runes) == 0 {
		return
	}
	h.bindings[runes[0]] = action
}

// Translate maps an event to an action; nil means the event is ignored.
func (h *Handler) Translate(ev tcell.Event) statepkg.Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, ht := ev.Size()
		return statepkg.ResizeAction{Width: w, Height: ht}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEnter:
			return statepkg.OpenAction{}
		case tcell.KeyCtrlC:
			return statepkg.QuitAction{}
		case tcell.KeyUp:
			return statepkg.MoveUpAction{}
		case tcell.KeyDown:
			return statepkg.MoveDownAction{}
		case tcell.KeyLeft:
			return statepkg.AscendAction{}
		case tcell.KeyRight:
			return statepkg.DescendAction{}
		case tcell.KeyRune:
			r := ev.Rune()
			if r >= '1' && r <= '9' {
				return statepkg.SelectTabAction{Index: int(r - '1')}
			}
			if action, ok := h.bindings[r]; ok {
				return action
			}
		}
	}

	return nil
}
