// Package field implements the height field behind the contour map: a
// row-major grid of scalar heights that grows under pointer deposits, is
// smoothed locally after each deposit, and is re-contoured into isobands on
// request.
package field

import (
	"fmt"
	"math"
	"slices"

	"contour-lines/internal/core"
	pcore "contour-lines/pkg/core"

	"gonum.org/v1/gonum/floats"
)

// Field is a height field over a fixed grid.
//
// A Field is not safe for concurrent use. The owning loop must serialise
// calls to Raise, Reset, Randomize and Isobands, or guard the Field with its
// own lock when it is shared.
type Field struct {
	// ID is the caller-supplied identity of this field. It is carried for
	// logging and never interpreted.
	ID string

	cfg    Config
	size   core.Size
	preset Preset

	matrix   []float64
	min, max float64
	version  uint64

	rng   *pcore.RNG
	bands bandCache
}

// Stats summarises the whole matrix. Unlike Min and Max it is recomputed from
// every cell.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// New allocates and fills a field for the given grid size and preset.
func New(id string, size core.Size, preset Preset, cfg Config) (*Field, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if !preset.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPreset, uint8(preset))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Field{
		ID:     id,
		cfg:    cfg,
		size:   size,
		preset: preset,
		matrix: make([]float64, size.Cells()),
		rng:    pcore.NewRNG(cfg.Seed),
	}
	f.fill()
	core.Logger().Debug("field initialized", "id", id, "w", size.W, "h", size.H, "preset", preset.String())
	return f, nil
}

func (f *Field) fill() {
	switch f.preset {
	case PresetEmpty:
		f.flatten()
	case PresetRandom:
		f.resample()
	}
	f.touch()
}

// Size reports the grid dimensions.
func (f *Field) Size() core.Size { return f.size }

// Preset reports the preset the field was created with.
func (f *Field) Preset() Preset { return f.preset }

// Config returns the active configuration.
func (f *Field) Config() Config { return f.cfg }

// Min returns the running minimum. It tracks only the values written by
// initialisation, Randomize, SetMatrix and the centre cell of each Raise.
func (f *Field) Min() float64 { return f.min }

// Max returns the running maximum; see Min for what it tracks.
func (f *Field) Max() float64 { return f.max }

// Version increases on every mutation.
func (f *Field) Version() uint64 { return f.version }

// Matrix returns a row-major copy of the heights. Writes to the copy do not
// reach the field; use SetMatrix so Version moves and Isobands recomputes.
func (f *Field) Matrix() []float64 { return slices.Clone(f.matrix) }

// SetMatrix replaces every cell with the contents of m and recomputes the
// extremes from the new values.
func (f *Field) SetMatrix(m []float64) error {
	if len(m) != len(f.matrix) {
		return fmt.Errorf("%w: got %d, want %d", ErrMatrixSize, len(m), len(f.matrix))
	}
	copy(f.matrix, m)
	f.min = floats.Min(f.matrix)
	f.max = floats.Max(f.matrix)
	f.touch()
	return nil
}

// Value returns the height at (x, y), or false when the cell is outside the grid.
func (f *Field) Value(x, y int) (float64, bool) {
	i, err := f.size.Index(x, y)
	if err != nil {
		return 0, false
	}
	return f.matrix[i], true
}

// Stats recomputes the extremes and mean over the whole matrix.
func (f *Field) Stats() Stats {
	return Stats{
		Min:  floats.Min(f.matrix),
		Max:  floats.Max(f.matrix),
		Mean: floats.Sum(f.matrix) / float64(len(f.matrix)),
	}
}

// Reset flattens every cell to the baseline and resets the extremes to it.
func (f *Field) Reset() {
	f.flatten()
	f.touch()
	core.Logger().Debug("field reset", "id", f.ID)
}

// Randomize refills every cell with Gaussian noise in [0, 100). The extremes
// are reset and then track the values written.
func (f *Field) Randomize() {
	f.resample()
	f.touch()
	core.Logger().Debug("field randomized", "id", f.ID, "min", f.min, "max", f.max)
}

func (f *Field) flatten() {
	for i := range f.matrix {
		f.matrix[i] = f.cfg.Baseline
	}
	f.min, f.max = f.cfg.Baseline, f.cfg.Baseline
}

func (f *Field) resample() {
	f.min, f.max = math.Inf(1), math.Inf(-1)
	for i := range f.matrix {
		z := f.rng.UnitNormal() * 100
		f.matrix[i] = z
		f.observe(z)
	}
}

func (f *Field) observe(z float64) {
	if z < f.min {
		f.min = z
	}
	if z > f.max {
		f.max = z
	}
}

func (f *Field) touch() { f.version++ }

// RaiseDefault raises p with the configured ZDelta and Density.
func (f *Field) RaiseDefault(p core.Point) error {
	return f.Raise(p, f.cfg.ZDelta, f.cfg.Density)
}

// Raise deposits zDelta on p and zDelta/density on each of its neighbours
// inside the grid, then smooths the neighbourhood. An out-of-bounds centre
// rejects the whole call without touching the field.
//
// Only the centre's value right after the deposit feeds Min and Max.
func (f *Field) Raise(p core.Point, zDelta, density float64) error {
	z, err := f.deposit(p, zDelta, density)
	if err != nil {
		core.Logger().Warn("raise rejected", "id", f.ID, "x", p.X, "y", p.Y, "err", err)
		return err
	}
	f.diffuse(p)
	f.observe(z)
	f.touch()
	return nil
}

// Deposit applies the deposit step of Raise without the smoothing pass.
func (f *Field) Deposit(p core.Point, zDelta, density float64) error {
	z, err := f.deposit(p, zDelta, density)
	if err != nil {
		return err
	}
	f.observe(z)
	f.touch()
	return nil
}

func (f *Field) deposit(p core.Point, zDelta, density float64) (float64, error) {
	if density <= 0 || math.IsNaN(density) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	center, err := f.size.Index(p.X, p.Y)
	if err != nil {
		return 0, err
	}
	f.matrix[center] += zDelta
	share := zDelta / density
	for _, o := range core.Moore {
		i, err := f.size.Index(p.X+o[0], p.Y+o[1])
		if err != nil {
			continue
		}
		f.matrix[i] += share
	}
	return f.matrix[center], nil
}
