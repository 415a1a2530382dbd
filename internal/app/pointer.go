package app

import (
	"time"

	"contour-lines/internal/core"
)

// Pointer turns cursor motion into growth events. Moving into a new cell
// raises it with the full force; resting on a cell keeps raising it with a
// force that fades to zero over DecayTime.
type Pointer struct {
	Force     float64
	DecayTime time.Duration

	cell      core.Point
	present   bool
	last      core.Point
	lastValid bool
	restStart time.Time
}

// NewPointer returns a pointer with the given force and decay.
func NewPointer(force float64, decay time.Duration) *Pointer {
	return &Pointer{Force: force, DecayTime: decay}
}

// Observe records the cell under the cursor. ok is false when the cursor is
// outside the canvas.
func (p *Pointer) Observe(cell core.Point, ok bool, now time.Time) {
	if !ok {
		p.Leave()
		return
	}
	if !p.present || cell != p.cell {
		p.restStart = now
	}
	p.cell = cell
	p.present = true
}

// Leave forgets the cursor, as when it exits the canvas.
func (p *Pointer) Leave() {
	p.present = false
	p.lastValid = false
	p.restStart = time.Time{}
}

// Tick reports the cell to raise on this tick and the force to raise it by.
func (p *Pointer) Tick(now time.Time) (core.Point, float64, bool) {
	if !p.present {
		return core.Point{}, 0, false
	}
	moved := !p.lastValid || p.last != p.cell
	p.last, p.lastValid = p.cell, true

	force := p.Force
	if !moved {
		force = p.restingForce(now)
	}
	if force <= 0 {
		return p.cell, 0, false
	}
	return p.cell, force, true
}

func (p *Pointer) restingForce(now time.Time) float64 {
	if p.DecayTime <= 0 {
		return 0
	}
	hover := now.Sub(p.restStart)
	fade := float64(p.DecayTime-hover) / float64(p.DecayTime)
	if fade < 0 {
		fade = 0
	}
	return fade * p.Force / 6
}
