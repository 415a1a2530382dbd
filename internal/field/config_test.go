package field

import (
	"math"
	"testing"

	"contour-lines/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestFromMapOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"contour_interval": "25",
		"z_delta":          "60",
		"density":          "2",
		"diffusion_depth":  "1",
		"seed":             "99",
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, cfg.ContourInterval)
	assert.Equal(t, 60.0, cfg.ZDelta)
	assert.Equal(t, 2.0, cfg.Density)
	assert.Equal(t, 1, cfg.DiffusionDepth)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, DefaultConfig().Baseline, cfg.Baseline)
}

func TestFromMapNil(t *testing.T) {
	cfg, err := FromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFromMapCollectsErrors(t *testing.T) {
	_, err := FromMap(map[string]string{
		"contour_interval": "wide",
		"density":          "dense",
		"seed":             "x",
	})
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Len(t, multierr.Errors(err), 3)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContourInterval = 0
	cfg.Density = -1
	cfg.DiffusionDepth = -2
	cfg.Simplify = -0.5
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Len(t, multierr.Errors(err), 4)
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("Empty")
	require.NoError(t, err)
	assert.Equal(t, PresetEmpty, p)

	p, err = ParsePreset(" random ")
	require.NoError(t, err)
	assert.Equal(t, PresetRandom, p)
	assert.Equal(t, "random", p.String())
	assert.Equal(t, PresetEmpty, p.Next())

	_, err = ParsePreset("gradient")
	require.ErrorIs(t, err, ErrUnknownPreset)
}

func TestFromMapRejectsDeepDiffusion(t *testing.T) {
	for _, depth := range []string{"3", "5000", "-1"} {
		_, err := FromMap(map[string]string{"diffusion_depth": depth})
		require.ErrorIs(t, err, ErrInvalidConfig, "diffusion_depth=%s", depth)
	}
	cfg, err := FromMap(map[string]string{"diffusion_depth": "2"})
	require.NoError(t, err)
	assert.Equal(t, MaxDiffusionDepth, cfg.DiffusionDepth)
}

func TestValidateRejectsNonFinite(t *testing.T) {
	for _, key := range []string{"contour_interval", "z_delta", "density", "baseline", "simplify"} {
		for _, v := range []string{"NaN", "Inf", "-Inf"} {
			_, err := FromMap(map[string]string{key: v})
			require.ErrorIs(t, err, ErrInvalidConfig, "%s=%s", key, v)
		}
	}

	cfg := DefaultConfig()
	cfg.Density = math.NaN()
	cfg.ZDelta = math.Inf(1)
	assert.Len(t, multierr.Errors(cfg.Validate()), 2)

	_, err := New("nan", core.Size{W: 4, H: 4}, PresetEmpty, cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
