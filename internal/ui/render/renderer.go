package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	fsutil "github.com/felipeagc/sf/internal/fs"
	statepkg "github.com/felipeagc/sf/internal/state"
)

// Renderer draws the whole UI from the tab set state.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	ratio  float64
}

// NewRenderer creates a renderer. ratio is the main pane's share of the
// terminal width.
func NewRenderer(screen tcell.Screen, ratio float64) *Renderer {
	return &Renderer{screen: screen, theme: DefaultTheme(), ratio: ratio}
}

// Render redraws every pane in full. Called once per loop iteration;
// there is no incremental diffing.
func (r *Renderer) Render(tabs *statepkg.TabSet, status string) {
	r.screen.Clear()

	w, h := r.screen.Size()
	layout := computeLayout(w, h, r.ratio)

	r.drawHeader(tabs, status, layout.header)
	r.drawMain(tabs.Active(), layout.main)
	r.drawSide(&tabs.Side, layout.side)

	r.screen.Show()
}

// drawHeader renders the tab indicators and the active view's path,
// with any transient status message right-aligned.
func (r *Renderer) drawHeader(tabs *statepkg.TabSet, status string, pane paneRect) {
	if pane.h == 0 || pane.w == 0 {
		return
	}

	base := tcell.StyleDefault.
		Foreground(r.theme.Foreground).
		Background(r.theme.Background)
	active := base.Foreground(r.theme.TabActiveFg).Bold(true)
	maxX := pane.x + pane.w

	x := r.drawText(pane.x, pane.y, maxX, "[", base)
	for i := range tabs.Views {
		style := base
		if i == tabs.ActiveIndex() {
			style = active
		}
		x = r.drawText(x, pane.y, maxX, strconv.Itoa(i+1), style)
		if i+1 < len(tabs.Views) {
			x = r.drawText(x, pane.y, maxX, " ", base)
		}
	}
	x = r.drawText(x, pane.y, maxX, "] - ", base)
	x = r.drawText(x, pane.y, maxX, tabs.Active().Path, base)

	if status != "" {
		msg := truncate(status, pane.w/2)
		sx := maxX - measureWidth(msg)
		if sx > x+1 {
			r.drawText(sx, pane.y, maxX, msg, base.Foreground(r.theme.StatusFg))
		}
	}
}

// drawMain renders the active view's listing with per-depth scrolling.
// The selected row is reverse-video across the full pane width.
func (r *Renderer) drawMain(view *statepkg.View, pane paneRect) {
	if pane.w == 0 || pane.h == 0 {
		return
	}

	base := tcell.StyleDefault.
		Foreground(r.theme.Foreground).
		Background(r.theme.Background)
	maxX := pane.x + pane.w

	if len(view.Entries) == 0 {
		label := "empty"
		if view.ScanError() != nil {
			label = "unreadable"
		}
		alert := tcell.StyleDefault.
			Foreground(r.theme.AlertFg).
			Background(r.theme.AlertBg)
		r.drawText(pane.x, pane.y, maxX, label, alert)
		return
	}

	offset := view.ClampOffset(pane.h)
	dir := base.Foreground(r.theme.DirectoryFg)

	for i := offset; i < len(view.Entries); i++ {
		y := pane.y + (i - offset)
		if y >= pane.y+pane.h {
			break
		}

		entry := view.Entries[i]
		style := base
		if entry.Kind == fsutil.KindDirectory {
			style = dir
		}
		selected := i == view.Selected
		if selected {
			style = style.Reverse(true)
		}

		x := r.drawText(pane.x, y, maxX, truncate(entry.Name, pane.w), style)
		if selected {
			for ; x < maxX; x++ {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// drawSide renders the preview of the highlighted directory. Nothing is
// drawn when the selection is not a directory.
func (r *Renderer) drawSide(side *statepkg.SideView, pane paneRect) {
	if !side.Active || pane.w == 0 || pane.h == 0 {
		return
	}

	base := tcell.StyleDefault.
		Foreground(r.theme.Foreground).
		Background(r.theme.Background)
	dir := base.Foreground(r.theme.DirectoryFg)
	maxX := pane.x + pane.w

	for i, entry := range side.Entries {
		if i >= pane.h {
			break
		}
		style := base
		if entry.Kind == fsutil.KindDirectory {
			style = dir
		}
		r.drawText(pane.x, pane.y+i, maxX, truncate(entry.Name, pane.w), style)
	}
}
