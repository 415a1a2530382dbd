package app

import (
	"testing"
	"time"

	"contour-lines/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerFullForceOnMove(t *testing.T) {
	now := time.Unix(100, 0)
	p := NewPointer(8, 2*time.Second)

	p.Observe(core.Point{X: 3, Y: 4}, true, now)
	cell, force, ok := p.Tick(now)
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 3, Y: 4}, cell)
	assert.Equal(t, 8.0, force)

	p.Observe(core.Point{X: 4, Y: 4}, true, now)
	_, force, ok = p.Tick(now)
	require.True(t, ok)
	assert.Equal(t, 8.0, force)
}

func TestPointerRestingForceDecays(t *testing.T) {
	start := time.Unix(100, 0)
	p := NewPointer(6, 2*time.Second)
	p.Observe(core.Point{X: 1, Y: 1}, true, start)
	_, _, _ = p.Tick(start)

	_, force, ok := p.Tick(start)
	require.True(t, ok)
	assert.InDelta(t, 1.0, force, 1e-9, "resting starts at force/6")

	_, force, ok = p.Tick(start.Add(time.Second))
	require.True(t, ok)
	assert.InDelta(t, 0.5, force, 1e-9)

	_, force, ok = p.Tick(start.Add(3 * time.Second))
	assert.False(t, ok)
	assert.Zero(t, force)
}

func TestPointerLeave(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewPointer(8, time.Second)
	p.Observe(core.Point{X: 2, Y: 2}, true, now)
	p.Observe(core.Point{}, false, now)
	_, _, ok := p.Tick(now)
	assert.False(t, ok)

	p.Observe(core.Point{X: 2, Y: 2}, true, now)
	_, force, ok := p.Tick(now)
	require.True(t, ok)
	assert.Equal(t, 8.0, force, "re-entering counts as a move")
}

func TestConfigNewField(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 100, 50, 10
	require.NoError(t, cfg.Set.Set("contour_interval=25"))
	f, err := cfg.NewField()
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 10, H: 5}, f.Size())
	assert.Equal(t, 25.0, f.Config().ContourInterval)
	assert.Equal(t, "topography", f.ID)

	cfg.Preset = "gradient"
	_, err = cfg.NewField()
	assert.Error(t, err)

	assert.Error(t, cfg.Set.Set("novalue"))
}
