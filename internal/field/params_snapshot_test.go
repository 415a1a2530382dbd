package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParametersSnapshot(t *testing.T) {
	f := newTestField(t, 8, 6, PresetRandom)
	snap := f.Parameters()

	p, ok := snap.Lookup("preset")
	require.True(t, ok)
	assert.Equal(t, "random", p.Value)

	p, ok = snap.Lookup("contour_interval")
	require.True(t, ok)
	assert.Equal(t, "20", p.Value)

	for _, ctrl := range f.ParameterControls() {
		_, ok := snap.Lookup(ctrl.Key)
		assert.True(t, ok, "control %q has a parameter", ctrl.Key)
	}
}

func TestSetParameters(t *testing.T) {
	f := newTestField(t, 8, 8, PresetEmpty)

	assert.True(t, f.SetFloatParameter("z_delta", 50))
	assert.Equal(t, 50.0, f.Config().ZDelta)

	assert.False(t, f.SetFloatParameter("density", 0), "invalid values are refused")
	assert.Equal(t, 4.0, f.Config().Density)

	assert.True(t, f.SetIntParameter("diffusion_depth", 1))
	assert.Equal(t, 1, f.Config().DiffusionDepth)
	assert.False(t, f.SetIntParameter("diffusion_depth", MaxDiffusionDepth+1))
	assert.False(t, f.SetFloatParameter("z_delta", math.NaN()))
	assert.Equal(t, 1, f.Config().DiffusionDepth)

	assert.False(t, f.SetFloatParameter("unknown", 1))
	assert.False(t, f.SetIntParameter("z_delta", 1))
}
