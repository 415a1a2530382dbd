package field

import (
	"math"
	"testing"

	"contour-lines/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyThresholdsDescending(t *testing.T) {
	got := Thresholds(10, 110, PresetEmpty, 20, 10)
	// zRange 100, 6 buckets, upper bound 700/6.
	assert.Equal(t, []float64{100, 80, 60, 40, 20}, got)
}

func TestEmptyThresholdsMonotonic(t *testing.T) {
	for _, tc := range []struct{ min, max float64 }{
		{10, 35}, {10, 110}, {0, 119}, {10, 487.5}, {-40, 260},
	} {
		got := Thresholds(tc.min, tc.max, PresetEmpty, 20, 10)
		require.NotEmpty(t, got)
		assert.Equal(t, 20.0, got[len(got)-1], "lowest boundary is the interval for %v", tc)
		for i := 1; i < len(got); i++ {
			require.Greater(t, got[i-1], got[i], "strictly descending for %v", tc)
		}
	}
}

func TestRandomThresholdsFixed(t *testing.T) {
	want := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}
	assert.Equal(t, want, Thresholds(0, 1000, PresetRandom, 20, 10))
	assert.Equal(t, want, Thresholds(50, 50, PresetRandom, 20, 10))

	got := Thresholds(0, 100, PresetRandom, 20, 10)
	got[0] = -1
	assert.Equal(t, want, Thresholds(0, 100, PresetRandom, 20, 10), "callers get a copy")
}

func TestDegenerateThresholds(t *testing.T) {
	cases := []struct {
		name          string
		min, max, itv float64
	}{
		{"Flat", 10, 10, 20},
		{"NeverRaised", -5, 0, 20},
		{"Negative", -30, -10, 20},
		{"ZeroInterval", 10, 110, 0},
		{"Inverted", 50, 10, 20},
		{"TinyRange", 0, 0.5, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, []float64{10}, Thresholds(tc.min, tc.max, PresetEmpty, tc.itv, 10))
		})
	}
}

func TestFieldThresholdsFollowExtremes(t *testing.T) {
	f := newTestField(t, 10, 10, PresetEmpty)
	assert.Equal(t, []float64{10}, f.Thresholds())

	require.NoError(t, f.Raise(core.Point{X: 5, Y: 5}, 100, 4))
	assert.Equal(t, []float64{100, 80, 60, 40, 20}, f.Thresholds())
}

func TestEmptyThresholdsCapped(t *testing.T) {
	for _, max := range []float64{2000, 1e7, 1e11, 1e150} {
		got := Thresholds(10, max, PresetEmpty, 20, 10)
		require.NotEmpty(t, got)
		require.LessOrEqual(t, len(got), MaxThresholds, "max %v", max)

		step := got[len(got)-1]
		assert.Equal(t, math.Trunc(step/20), step/20, "step stays a multiple of the interval for max %v", max)
		for i := 1; i < len(got); i++ {
			require.Greater(t, got[i-1], got[i])
		}
	}
}

func TestThresholdsStayBoundedUnderRepeatedRaise(t *testing.T) {
	f := newTestField(t, 40, 40, PresetEmpty)
	p := core.Point{X: 20, Y: 20}
	for i := 0; i < 30; i++ {
		require.NoError(t, f.Raise(p, 8, 4))
	}
	require.Greater(t, f.Max(), 1e6, "additive blending grows the peak quickly")

	assert.LessOrEqual(t, len(f.Thresholds()), MaxThresholds)
	bands, err := f.Isobands()
	require.NoError(t, err)
	assert.NotEmpty(t, bands)
	assert.LessOrEqual(t, len(bands), MaxThresholds)
}
