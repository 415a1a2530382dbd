package field

import (
	"math"
	"testing"

	"contour-lines/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetThenIsobandsIsSingleBand(t *testing.T) {
	f := newTestField(t, 10, 10, PresetEmpty)
	require.NoError(t, f.RaiseDefault(core.Point{X: 4, Y: 4}))
	f.Reset()

	bands, err := f.Isobands()
	require.NoError(t, err)
	require.Len(t, bands, 1)
	assert.Equal(t, 10.0, bands[0].Lower)
	assert.True(t, math.IsInf(bands[0].Upper, 1))

	bounds := bands[0].Bounds()
	assert.Equal(t, 0.0, bounds.Min.X)
	assert.Equal(t, 0.0, bounds.Min.Y)
	assert.Equal(t, 10.0, bounds.Max.X)
	assert.Equal(t, 10.0, bounds.Max.Y)
}

func TestIsobandsAfterRaise(t *testing.T) {
	f := newTestField(t, 20, 20, PresetEmpty)
	for i := 0; i < 5; i++ {
		require.NoError(t, f.RaiseDefault(core.Point{X: 10, Y: 10}))
	}
	bands, err := f.Isobands()
	require.NoError(t, err)
	require.NotEmpty(t, bands)

	thresholds := f.Thresholds()
	assert.Equal(t, thresholds[len(thresholds)-1], bands[0].Lower)
	for _, b := range bands {
		bounds := b.Bounds()
		assert.GreaterOrEqual(t, bounds.Min.X, 0.0)
		assert.GreaterOrEqual(t, bounds.Min.Y, 0.0)
		assert.LessOrEqual(t, bounds.Max.X, 20.0)
		assert.LessOrEqual(t, bounds.Max.Y, 20.0)
	}
}

func TestIsobandsRandomPreset(t *testing.T) {
	f := newTestField(t, 16, 16, PresetRandom)
	bands, err := f.Isobands()
	require.NoError(t, err)
	require.NotEmpty(t, bands)
	assert.Equal(t, 0.0, bands[0].Lower, "every sample is >= 0")
}

func TestIsobandsMemoisedUntilMutation(t *testing.T) {
	f := newTestField(t, 12, 12, PresetEmpty)
	require.NoError(t, f.RaiseDefault(core.Point{X: 6, Y: 6}))

	first, err := f.Isobands()
	require.NoError(t, err)
	second, err := f.Isobands()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, f.RaiseDefault(core.Point{X: 2, Y: 9}))
	third, err := f.Isobands()
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	// A config change also invalidates the cache.
	require.True(t, f.SetFloatParameter("contour_interval", 40))
	fourth, err := f.Isobands()
	require.NoError(t, err)
	assert.NotEqual(t, len(third), len(fourth))
}
