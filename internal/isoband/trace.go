package isoband

import (
	"math"

	"contour-lines/internal/core"

	"github.com/ctessum/geom"
)

// tracer walks the padded grid. Padded sample (i, j) maps to grid sample
// (i-1, j-1); the outermost ring of padded samples is always outside.
type tracer struct {
	values []float64
	size   core.Size
	pw     int
}

func newTracer(values []float64, size core.Size) (*tracer, error) {
	if err := checkSize(values, size); err != nil {
		return nil, err
	}
	return &tracer{values: values, size: size, pw: size.W + 2}, nil
}

func (t *tracer) padding(i, j int) bool {
	return i <= 0 || j <= 0 || i > t.size.W || j > t.size.H
}

func (t *tracer) value(i, j int) float64 {
	return t.values[(j-1)*t.size.W+(i-1)]
}

func (t *tracer) inside(i, j int, thr float64) bool {
	if t.padding(i, j) {
		return false
	}
	return t.value(i, j) >= thr
}

func (t *tracer) px(i int) float64 { return clamp(float64(i)-0.5, 0, float64(t.size.W)) }
func (t *tracer) py(j int) float64 { return clamp(float64(j)-0.5, 0, float64(t.size.H)) }

// Edge keys: horizontal edge from (i,j) to (i+1,j) is even, vertical edge
// from (i,j) to (i,j+1) is odd.
func (t *tracer) hkey(i, j int) int { return (j*t.pw + i) * 2 }
func (t *tracer) vkey(i, j int) int { return (j*t.pw+i)*2 + 1 }

// crossing locates the threshold on the edge identified by key.
func (t *tracer) crossing(key int, thr float64) geom.Point {
	cell := key / 2
	i0, j0 := cell%t.pw, cell/t.pw
	i1, j1 := i0+1, j0
	if key%2 == 1 {
		i1, j1 = i0, j0+1
	}
	var f float64
	switch {
	case t.padding(i0, j0):
		f = 0
	case t.padding(i1, j1):
		f = 1
	default:
		v0, v1 := t.value(i0, j0), t.value(i1, j1)
		f = (thr - v0) / (v1 - v0)
		if math.IsNaN(f) {
			f = 0.5
		}
		f = clamp(f, 0, 1)
	}
	x0, y0 := t.px(i0), t.py(j0)
	x1, y1 := t.px(i1), t.py(j1)
	return geom.Point{X: x0 + f*(x1-x0), Y: y0 + f*(y1-y0)}
}

// trace returns the rings bounding {v >= thr}. Rings are closed (first point
// repeated) and keep the inside on a consistent side, so holes wind opposite
// to outer boundaries.
func (t *tracer) trace(thr float64) geom.Polygon {
	next := make(map[int]int)
	var starts []int

	var in [4]bool
	var edges [4]int
	for j := 0; j <= t.size.H; j++ {
		for i := 0; i <= t.size.W; i++ {
			// Corners clockwise from top-left; edge k runs from corner k to k+1.
			in[0] = t.inside(i, j, thr)
			in[1] = t.inside(i+1, j, thr)
			in[2] = t.inside(i+1, j+1, thr)
			in[3] = t.inside(i, j+1, thr)
			if in[0] == in[1] && in[1] == in[2] && in[2] == in[3] {
				continue
			}
			edges[0] = t.hkey(i, j)
			edges[1] = t.vkey(i+1, j)
			edges[2] = t.hkey(i, j+1)
			edges[3] = t.vkey(i, j)

			saddle := in[0] == in[2] && in[1] == in[3]
			joined := saddle && t.centerInside(i, j, thr)
			for k := 0; k < 4; k++ {
				if in[k] || !in[(k+1)%4] {
					continue
				}
				// Edge k enters the inside region. A saddle leaves through the
				// next edge, or the previous one when joined; otherwise the
				// segment leaves through the only edge going from inside to outside.
				var exit int
				switch {
				case joined:
					exit = (k + 3) % 4
				case saddle:
					exit = (k + 1) % 4
				default:
					exit = exitEdge(in)
				}
				next[edges[k]] = edges[exit]
				starts = append(starts, edges[k])
			}
		}
	}

	var rings geom.Polygon
	seen := make(map[int]bool, len(next))
	for _, start := range starts {
		if seen[start] {
			continue
		}
		ring := []geom.Point{t.crossing(start, thr)}
		seen[start] = true
		closed := false
		for k, ok := next[start]; ok; k, ok = next[k] {
			if k == start {
				closed = true
				break
			}
			if seen[k] {
				break
			}
			seen[k] = true
			ring = append(ring, t.crossing(k, thr))
		}
		if !closed || len(ring) < 3 {
			continue
		}
		ring = append(ring, ring[0])
		rings = append(rings, ring)
	}
	return rings
}

func exitEdge(in [4]bool) int {
	for m := 0; m < 4; m++ {
		if in[m] && !in[(m+1)%4] {
			return m
		}
	}
	return 0
}

// centerInside resolves a saddle by the mean of its four corners.
func (t *tracer) centerInside(i, j int, thr float64) bool {
	if t.padding(i, j) || t.padding(i+1, j+1) {
		return false
	}
	mean := (t.value(i, j) + t.value(i+1, j) + t.value(i+1, j+1) + t.value(i, j+1)) / 4
	return mean >= thr
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
