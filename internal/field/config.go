package field

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/multierr"
)

// Config holds the tunables of a height field.
type Config struct {
	// ContourInterval is the vertical distance between bands for PresetEmpty.
	ContourInterval float64
	// ZDelta is the height deposited on the raised cell.
	ZDelta float64
	// Density divides ZDelta for the eight surrounding cells.
	Density float64
	// Baseline is the value of an untouched cell.
	Baseline float64
	// DiffusionDepth bounds the smoothing sweep around a raised cell.
	DiffusionDepth int
	// Simplify is the polygon simplification tolerance in cells; 0 disables it.
	Simplify float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		ContourInterval: 20,
		ZDelta:          100,
		Density:         4,
		Baseline:        10,
		DiffusionDepth:  2,
		Simplify:        0,
		Seed:            1337,
	}
}

// MaxDiffusionDepth bounds DiffusionDepth so a raise touches at most
// (2*MaxDiffusionDepth+1)^2 cells.
const MaxDiffusionDepth = 2

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var err error
	for _, v := range []struct {
		key   string
		value float64
	}{
		{"contour_interval", c.ContourInterval},
		{"z_delta", c.ZDelta},
		{"density", c.Density},
		{"baseline", c.Baseline},
		{"simplify", c.Simplify},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			err = multierr.Append(err, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, v.key, v.value))
		}
	}
	if c.ContourInterval <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: contour_interval must be > 0, got %v", ErrInvalidConfig, c.ContourInterval))
	}
	if c.Density <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: density must be > 0, got %v", ErrInvalidConfig, c.Density))
	}
	if c.DiffusionDepth < 0 || c.DiffusionDepth > MaxDiffusionDepth {
		err = multierr.Append(err, fmt.Errorf("%w: diffusion_depth must be in [0,%d], got %d", ErrInvalidConfig, MaxDiffusionDepth, c.DiffusionDepth))
	}
	if c.Simplify < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: simplify must be >= 0, got %v", ErrInvalidConfig, c.Simplify))
	}
	return err
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Keys that are absent keep their defaults; malformed values are reported
// together and the returned config holds the defaults for them.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	var err error
	parseFloat := func(key string, dst *float64) {
		v, ok := cfg[key]
		if !ok {
			return
		}
		parsed, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, perr))
			return
		}
		*dst = parsed
	}
	parseFloat("contour_interval", &c.ContourInterval)
	parseFloat("z_delta", &c.ZDelta)
	parseFloat("density", &c.Density)
	parseFloat("baseline", &c.Baseline)
	parseFloat("simplify", &c.Simplify)
	if v, ok := cfg["diffusion_depth"]; ok {
		parsed, perr := strconv.Atoi(v)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: diffusion_depth=%q: %v", ErrInvalidConfig, v, perr))
		} else {
			c.DiffusionDepth = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		parsed, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: seed=%q: %v", ErrInvalidConfig, v, perr))
		} else {
			c.Seed = parsed
		}
	}
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}
