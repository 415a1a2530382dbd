package field

import (
	"slices"

	"contour-lines/internal/core"
	"contour-lines/internal/isoband"
)

type bandCache struct {
	valid   bool
	version uint64
	bands   []isoband.Band
}

// Isobands recomputes the thresholds from the current extremes and contours
// the matrix against them. Results are memoised until the next mutation; the
// returned slice is fresh but the band polygons are shared with the cache and
// must be treated as read-only.
func (f *Field) Isobands() ([]isoband.Band, error) {
	if f.bands.valid && f.bands.version == f.version {
		return slices.Clone(f.bands.bands), nil
	}
	thresholds := f.Thresholds()
	bands, err := isoband.Extract(f.matrix, f.size, thresholds, isoband.Options{Simplify: f.cfg.Simplify})
	if err != nil {
		return nil, err
	}
	f.bands = bandCache{valid: true, version: f.version, bands: bands}
	core.Logger().Debug("isobands extracted", "id", f.ID, "thresholds", len(thresholds), "bands", len(bands))
	return slices.Clone(bands), nil
}
