package core

import "math"

// Resolution maps a pixel surface onto a grid of square cells.
type Resolution struct {
	Width    int
	Height   int
	CellSize int
}

// Grid returns the grid size covering the surface. Partial cells at the right
// and bottom edges count as whole cells.
func (r Resolution) Grid() Size {
	cell := r.CellSize
	if cell <= 0 {
		cell = 1
	}
	w := (r.Width + cell - 1) / cell
	h := (r.Height + cell - 1) / cell
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Size{W: w, H: h}
}

// CellCount returns the number of cells in the grid.
func (r Resolution) CellCount() int { return r.Grid().Cells() }

// CellAt maps pixel coordinates to the cell containing them.
func (r Resolution) CellAt(px, py float64) (Point, bool) {
	cell := r.CellSize
	if cell <= 0 {
		cell = 1
	}
	if math.IsNaN(px) || math.IsNaN(py) || px < 0 || py < 0 {
		return Point{}, false
	}
	p := Point{X: int(px) / cell, Y: int(py) / cell}
	if !r.Grid().Contains(p) {
		return Point{}, false
	}
	return p, true
}
