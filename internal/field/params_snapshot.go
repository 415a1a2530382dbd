package field

import (
	"strconv"

	"contour-lines/internal/core"
)

// Parameters reports the current tunables.
func (f *Field) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", f.size.W),
				intParam("h", "Height", f.size.H),
				{Key: "preset", Label: "Preset", Type: core.ParamTypeString, Value: f.preset.String()},
				int64Param("seed", "Seed", f.cfg.Seed),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("z_delta", "Raise amount", f.cfg.ZDelta),
				floatParam("density", "Neighbour density", f.cfg.Density),
				intParam("diffusion_depth", "Diffusion depth", f.cfg.DiffusionDepth),
				floatParam("baseline", "Baseline", f.cfg.Baseline),
			},
		},
		{
			Name: "Contours",
			Params: []core.Parameter{
				floatParam("contour_interval", "Contour interval", f.cfg.ContourInterval),
				floatParam("simplify", "Simplify", f.cfg.Simplify),
				floatParam("min", "Min", f.min),
				floatParam("max", "Max", f.max),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable at runtime.
func (f *Field) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "contour_interval", Label: "Interval", Type: core.ParamTypeFloat, Step: 5, Min: 5, HasMin: true, Max: 200, HasMax: true},
		{Key: "z_delta", Label: "Raise", Type: core.ParamTypeFloat, Step: 10, Min: 0, HasMin: true},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 1, Min: 1, HasMin: true, Max: 16, HasMax: true},
		{Key: "diffusion_depth", Label: "Diffusion", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: MaxDiffusionDepth, HasMax: true},
		{Key: "simplify", Label: "Simplify", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true, Max: 2, HasMax: true},
	}
}

// SetFloatParameter updates a floating point tunable. Values that would make
// the config invalid are refused.
func (f *Field) SetFloatParameter(key string, value float64) bool {
	next := f.cfg
	switch key {
	case "contour_interval":
		next.ContourInterval = value
	case "z_delta":
		next.ZDelta = value
	case "density":
		next.Density = value
	case "simplify":
		next.Simplify = value
	default:
		return false
	}
	return f.apply(next)
}

// SetIntParameter updates an integer tunable.
func (f *Field) SetIntParameter(key string, value int) bool {
	if key != "diffusion_depth" {
		return false
	}
	next := f.cfg
	next.DiffusionDepth = value
	return f.apply(next)
}

func (f *Field) apply(next Config) bool {
	if err := next.Validate(); err != nil {
		return false
	}
	f.cfg = next
	f.touch()
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
