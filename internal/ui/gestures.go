package ui

import "math"

// ReorderGesture turns the vertical distance of a drag over a list row into
// a target row index. Rows are assumed to have equal height.
type ReorderGesture struct {
	rowHeight float32
	count     func() int
	onMove    func(from, to int)

	active bool
	start  int
	dy     float32
}

// NewReorderGesture creates a gesture for a list of count() rows of
// rowHeight each. onMove is called when a drag ends on a different row.
func NewReorderGesture(rowHeight float32, count func() int, onMove func(from, to int)) *ReorderGesture {
	return &ReorderGesture{
		rowHeight: rowHeight,
		count:     count,
		onMove:    onMove,
	}
}

// SetRowHeight updates the row pitch, e.g. after the theme changed
func (g *ReorderGesture) SetRowHeight(h float32) {
	if h > 0 {
		g.rowHeight = h
	}
}

// Begin starts tracking a drag of row index. A drag already in progress is
// kept.
func (g *ReorderGesture) Begin(index int) {
	if g.active {
		return
	}
	g.active = true
	g.start = index
	g.dy = 0
}

// Drag accumulates vertical movement
func (g *ReorderGesture) Drag(dy float32) {
	if g.active {
		g.dy += dy
	}
}

// Active reports whether a drag is being tracked
func (g *ReorderGesture) Active() bool {
	return g.active
}

// Source returns the row the current drag started on
func (g *ReorderGesture) Source() int {
	return g.start
}

// Target returns the row the dragged entry would land on
func (g *ReorderGesture) Target() int {
	n := g.count()
	if n == 0 {
		return -1
	}
	offset := 0
	if g.rowHeight > 0 {
		offset = int(math.Round(float64(g.dy / g.rowHeight)))
	}
	target := g.start + offset
	if target < 0 {
		target = 0
	}
	if target > n-1 {
		target = n - 1
	}
	return target
}

// End finishes the drag and moves the entry if it landed on another row
func (g *ReorderGesture) End() (from, to int, moved bool) {
	if !g.active {
		return 0, 0, false
	}
	from, to = g.start, g.Target()
	g.active = false
	g.dy = 0

	if to < 0 || from == to {
		return from, to, false
	}
	if g.onMove != nil {
		g.onMove(from, to)
	}
	return from, to, true
}

// Cancel drops the current drag without moving anything
func (g *ReorderGesture) Cancel() {
	g.active = false
	g.dy = 0
}
