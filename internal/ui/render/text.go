package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func measureWidth(text string) int {
	return runewidth.StringWidth(text)
}

// truncate clips text to maxWidth cells, appending an ellipsis when
// anything was cut.
func truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}
	const ellipsis = "…"
	if maxWidth == 1 {
		return ellipsis
	}
	return runewidth.Truncate(text, maxWidth, ellipsis)
}

// drawText writes text starting at (x, y), clipping at column maxX, and
// returns the column after the last cell written.
func (r *Renderer) drawText(x, y, maxX int, text string, style tcell.Style) int {
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w == 0 {
			w = 1
		}
		if x+w > maxX {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		for i := 1; i < w; i++ {
			r.screen.SetContent(x+i, y, ' ', nil, style)
		}
		x += w
	}
	return x
}
