package field

import "errors"

var (
	// ErrMatrixSize is returned when a replacement matrix does not match the grid.
	ErrMatrixSize = errors.New("field: matrix length does not match grid size")

	// ErrUnknownPreset is returned for preset names or values outside the known set.
	ErrUnknownPreset = errors.New("field: unknown preset")

	// ErrInvalidDensity is returned when a raise would divide by a non-positive density.
	ErrInvalidDensity = errors.New("field: density must be positive")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("field: invalid config")
)
