package app

import (
	"contour-lines/internal/core"
	"contour-lines/internal/field"
)

// raise grows f at p with the field's configured density and reports whether
// the field changed. Rejected raises are logged and skipped.
func raise(f *field.Field, p core.Point, zDelta float64) bool {
	if err := f.Raise(p, zDelta, f.Config().Density); err != nil {
		core.Logger().Debug("pointer raise skipped", "id", f.ID, "x", p.X, "y", p.Y, "err", err)
		return false
	}
	return true
}
