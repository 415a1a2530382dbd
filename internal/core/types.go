package core

import "fmt"

// Size describes the dimensions of a height-field grid in cells.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells addressed by the grid.
func (s Size) Cells() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}

// Validate rejects grids with a zero or negative dimension.
func (s Size) Validate() error {
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGridSize, s.W, s.H)
	}
	return nil
}

// Point is a grid-cell coordinate.
type Point struct {
	X int
	Y int
}

// Add offsets p by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }
