package core

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate or index falls outside the grid.
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")

	// ErrInvalidGridSize is returned for grids with a zero or negative dimension.
	ErrInvalidGridSize = errors.New("core: invalid grid size")
)
