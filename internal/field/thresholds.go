package field

import (
	"math"
	"slices"
)

// MaxThresholds caps the number of boundaries the empty strategy produces.
// Past it the step widens to a multiple of the contour interval, so contouring
// stays bounded by grid size however tall the field grows.
const MaxThresholds = 64

// randomThresholds are the fixed band boundaries of PresetRandom.
var randomThresholds = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}

// Thresholds returns the band boundaries for the current extremes.
func (f *Field) Thresholds() []float64 {
	return Thresholds(f.min, f.max, f.preset, f.cfg.ContourInterval, f.cfg.Baseline)
}

// Thresholds computes band boundaries from field statistics.
//
// PresetEmpty yields interval, 2*interval, ... strictly below
// (buckets+1)*zRange/buckets, where zRange = ceil(max-min) and
// buckets = ceil(max/interval), highest boundary first. When that would exceed
// MaxThresholds the step becomes the smallest multiple of interval that fits.
// PresetRandom yields the fixed sequence 0, 10, ..., 90. Whenever the empty strategy has nothing to
// work with (flat or non-positive field, zero buckets, empty range) the result
// is the single boundary baseline.
func Thresholds(min, max float64, preset Preset, interval, baseline float64) []float64 {
	switch preset {
	case PresetRandom:
		return slices.Clone(randomThresholds)
	case PresetEmpty:
		return emptyThresholds(min, max, interval, baseline)
	default:
		return []float64{baseline}
	}
}

func emptyThresholds(min, max, interval, baseline float64) []float64 {
	degenerate := []float64{baseline}
	if !(interval > 0) || !(max > 0) || !(max > min) || math.IsInf(max, 0) || math.IsInf(min, 0) {
		return degenerate
	}
	zRange := math.Ceil(max - min)
	buckets := math.Ceil(max / interval)
	if buckets <= 0 {
		return degenerate
	}
	end := (buckets + 1) * zRange / buckets
	if math.IsNaN(end) || math.IsInf(end, 0) {
		return degenerate
	}

	step := interval
	if n := end / interval; n > MaxThresholds {
		step = interval * math.Ceil(n/MaxThresholds)
	}
	out := make([]float64, 0, MaxThresholds)
	for k := 1; float64(k)*step < end; k++ {
		out = append(out, float64(k)*step)
	}
	if len(out) == 0 {
		return degenerate
	}
	slices.Reverse(out)
	return out
}
