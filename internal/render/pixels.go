package render

import "image/color"

// FillHeatmapRGBA converts height values into RGBA pixels in buf by mapping
// [lo, hi] onto the palette. Values outside the range use the end colours.
// When the palette is empty the buffer is cleared to transparent black.
func FillHeatmapRGBA(buf []byte, values []float64, lo, hi float64, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range values {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	span := hi - lo
	for i, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(last))
		}
		if idx < 0 {
			idx = 0
		}
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
