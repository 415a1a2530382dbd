package render

import (
	"image/color"

	husl "github.com/hsluv/hsluv-go"
)

// BandPalette returns n band colours ramping from low, dark green-blue bands
// to high, light ochre bands at constant saturation in HSLuv space.
func BandPalette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	palette := make([]color.RGBA, n)
	for i := range palette {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		palette[i] = hsluvColor(200-150*t, 60, 30+55*t)
	}
	return palette
}

// LineColor is the colour of contour outlines.
var LineColor = color.RGBA{R: 24, G: 22, B: 20, A: 255}

// Background is the colour behind the lowest band.
var Background = color.RGBA{R: 242, G: 238, B: 228, A: 255}

func hsluvColor(h, s, l float64) color.RGBA {
	r, g, b := husl.HuslToRGB(h, s, l)
	return color.RGBA{
		R: channel(r),
		G: channel(g),
		B: channel(b),
		A: 0xff,
	}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(v*0xff + 0.5)
	}
}
