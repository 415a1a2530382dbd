package field

import (
	"fmt"
	"strings"
)

// Preset selects how a field is filled and how its thresholds are derived.
// The two always travel together.
type Preset uint8

const (
	// PresetEmpty starts from a flat baseline and spaces bands by the contour interval.
	PresetEmpty Preset = iota
	// PresetRandom starts from Gaussian noise and uses fixed bands 0..90.
	PresetRandom
)

// Presets lists every preset in display order.
var Presets = []Preset{PresetEmpty, PresetRandom}

func (p Preset) String() string {
	switch p {
	case PresetEmpty:
		return "empty"
	case PresetRandom:
		return "random"
	default:
		return fmt.Sprintf("preset(%d)", uint8(p))
	}
}

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	switch p {
	case PresetEmpty, PresetRandom:
		return true
	default:
		return false
	}
}

// Next cycles through the known presets.
func (p Preset) Next() Preset {
	switch p {
	case PresetEmpty:
		return PresetRandom
	default:
		return PresetEmpty
	}
}

// ParsePreset maps "empty" or "random" to a Preset.
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "empty":
		return PresetEmpty, nil
	case "random":
		return PresetRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}
