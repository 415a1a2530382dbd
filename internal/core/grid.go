package core

import "fmt"

// Moore lists the offsets of the eight cells surrounding a cell, row by row.
var Moore = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// InBounds reports whether (x, y) lies inside [0,W)×[0,H).
func (s Size) InBounds(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Contains reports whether p lies inside the grid.
func (s Size) Contains(p Point) bool { return s.InBounds(p.X, p.Y) }

// Index returns the row-major slice index for (x, y). Coordinates outside the
// grid are rejected before the transform is applied.
func (s Size) Index(x, y int) (int, error) {
	if !s.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, s.W, s.H)
	}
	return y*s.W + x, nil
}

// Coord is the inverse of Index over the half-open range 0 <= i < Cells().
func (s Size) Coord(i int) (x, y int, ok bool) {
	if i < 0 || i >= s.Cells() {
		return 0, 0, false
	}
	return i % s.W, i / s.W, true
}

// ValidIndex reports whether i addresses a cell.
func (s Size) ValidIndex(i int) bool { return i >= 0 && i < s.Cells() }
