package field

import "contour-lines/internal/core"

// diffuse runs the smoothing sweep around center: a breadth-first walk over
// the Moore neighbourhood up to DiffusionDepth steps away. Each visited cell
// gains the mean of itself and its in-grid neighbours, read at the moment it
// is visited. It returns the number of cells processed.
func (f *Field) diffuse(center core.Point) int {
	depth := f.cfg.DiffusionDepth
	if depth < 0 || !f.size.Contains(center) {
		return 0
	}
	span := 2*depth + 1
	visited := make([]bool, span*span)
	mark := func(p core.Point) bool {
		k := (p.Y-center.Y+depth)*span + (p.X - center.X + depth)
		if visited[k] {
			return false
		}
		visited[k] = true
		return true
	}

	type step struct {
		p core.Point
		d int
	}
	queue := make([]step, 0, span*span)
	queue = append(queue, step{p: center})
	mark(center)

	processed := 0
	for head := 0; head < len(queue); head++ {
		s := queue[head]
		f.blend(s.p)
		processed++
		if s.d == depth {
			continue
		}
		for _, o := range core.Moore {
			q := s.p.Add(o[0], o[1])
			if !f.size.Contains(q) || !mark(q) {
				continue
			}
			queue = append(queue, step{p: q, d: s.d + 1})
		}
	}
	return processed
}

// blend adds to p the mean of p and its in-grid neighbours.
func (f *Field) blend(p core.Point) {
	w := f.size.W
	center := p.Y*w + p.X
	sum := f.matrix[center]
	n := 1
	for _, o := range core.Moore {
		x, y := p.X+o[0], p.Y+o[1]
		if !f.size.InBounds(x, y) {
			continue
		}
		sum += f.matrix[y*w+x]
		n++
	}
	f.matrix[center] += sum / float64(n)
}
