package state

// Action is the base interface for all navigation inputs.
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type AscendAction struct{}
type DescendAction struct{}
type ToggleHiddenAction struct{}

// SelectTabAction activates the view at Index.
type SelectTabAction struct {
	Index int
}

// ===== EXTERNAL PROGRAM ACTIONS =====

type OpenAction struct{}
type EditAction struct{}

// ===== APPLICATION ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type QuitAction struct{}
