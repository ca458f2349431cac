package render

import "github.com/gdamore/tcell/v2"

// Theme defines application colors.
type Theme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	DirectoryFg tcell.Color
	TabActiveFg tcell.Color
	AlertFg     tcell.Color
	AlertBg     tcell.Color
	StatusFg    tcell.Color
}

// DefaultTheme mirrors the classic two-pair curses scheme: blue for
// directories and the active tab, white on red for the empty state.
func DefaultTheme() Theme {
	return Theme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		DirectoryFg: tcell.ColorBlue,
		TabActiveFg: tcell.ColorBlue,
		AlertFg:     tcell.ColorWhite,
		AlertBg:     tcell.ColorRed,
		StatusFg:    tcell.ColorYellow,
	}
}
