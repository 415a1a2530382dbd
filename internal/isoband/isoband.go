// Package isoband turns a row-major scalar grid into filled contour bands
// using marching squares.
//
// Sample (x, y) sits at the centre of its cell, (x+0.5, y+0.5). The grid is
// surrounded by a ring of samples that lie below every threshold, so every
// contour closes; crossings against that ring are placed on the grid border.
// All output coordinates lie within [0,W]×[0,H].
package isoband

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"contour-lines/internal/core"

	"github.com/ctessum/geom"
)

// ErrMatrixSize is returned when the value slice does not match the grid.
var ErrMatrixSize = errors.New("isoband: value count does not match grid size")

// Band is the region whose values fall in [Lower, Upper). Upper is +Inf for
// the topmost band. The rings of a band must be filled with the even-odd
// rule: they are the boundary of {v >= Lower} followed by the boundary of
// {v >= Upper}.
type Band struct {
	Lower   float64
	Upper   float64
	Polygon geom.Polygon
}

// Contains reports whether z falls in the band's interval.
func (b Band) Contains(z float64) bool { return z >= b.Lower && z < b.Upper }

// Bounds returns the bounding box of the band's rings.
func (b Band) Bounds() *geom.Bounds { return b.Polygon.Bounds() }

// Options tunes extraction.
type Options struct {
	// Simplify is the simplification tolerance in cells. Zero keeps every vertex.
	Simplify float64
}

// Extract contours values against thresholds and returns one band per
// non-empty threshold interval, ordered by ascending Lower. Thresholds may be
// given in any order; duplicates and non-finite values are dropped. Regions
// below the lowest threshold belong to no band.
func Extract(values []float64, size core.Size, thresholds []float64, opts Options) ([]Band, error) {
	tr, err := newTracer(values, size)
	if err != nil {
		return nil, err
	}
	levels := normalize(thresholds)
	rings := make([]geom.Polygon, len(levels))
	for i, t := range levels {
		rings[i] = tr.trace(t)
	}

	bands := make([]Band, 0, len(levels))
	for i, lower := range levels {
		if len(rings[i]) == 0 {
			continue
		}
		b := Band{Lower: lower, Upper: math.Inf(1)}
		b.Polygon = append(b.Polygon, rings[i]...)
		if i+1 < len(levels) {
			b.Upper = levels[i+1]
			b.Polygon = append(b.Polygon, rings[i+1]...)
		}
		if opts.Simplify > 0 {
			b.Polygon = simplify(b.Polygon, opts.Simplify)
		}
		bands = append(bands, b)
	}
	return bands, nil
}

func normalize(thresholds []float64) []float64 {
	out := make([]float64, 0, len(thresholds))
	for _, t := range thresholds {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			continue
		}
		out = append(out, t)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func simplify(p geom.Polygon, tolerance float64) geom.Polygon {
	s, ok := p.Simplify(tolerance).(geom.Polygon)
	if !ok {
		return p
	}
	return s
}

func checkSize(values []float64, size core.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	if len(values) != size.Cells() {
		return fmt.Errorf("%w: got %d, want %d", ErrMatrixSize, len(values), size.Cells())
	}
	return nil
}
