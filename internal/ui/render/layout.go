package render

// paneRect is the placement of one pane on the screen.
type paneRect struct {
	x, y, w, h int
}

type layoutMetrics struct {
	header paneRect
	main   paneRect
	side   paneRect
}

// computeLayout splits the screen into a one-row header, the main list
// at ratio of the width, and the side preview in the remainder with a
// one-column separator.
func computeLayout(w, h int, ratio float64) layoutMetrics {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	headerH := 1
	if h < 1 {
		headerH = h
	}
	bodyH := h - headerH
	if bodyH < 0 {
		bodyH = 0
	}

	mainW := int(float64(w) * ratio)
	if mainW < 1 && w > 0 {
		mainW = 1
	}
	if mainW > w {
		mainW = w
	}

	sideX := mainW + 1
	sideW := w - sideX
	if sideW < 0 {
		sideX = w
		sideW = 0
	}

	return layoutMetrics{
		header: paneRect{x: 0, y: 0, w: w, h: headerH},
		main:   paneRect{x: 0, y: headerH, w: mainW, h: bodyH},
		side:   paneRect{x: sideX, y: headerH, w: sideW, h: bodyH},
	}
}
