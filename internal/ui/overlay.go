//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"contour-lines/internal/core"
	"contour-lines/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FieldView is the read-only view of a height field the overlay draws.
type FieldView interface {
	Size() core.Size
	Matrix() []float64
	Min() float64
	Max() float64
	Thresholds() []float64
}

// Overlay draws optional debugging visuals on top of the bands: the raw
// heights as a heatmap (key 1) and the current extremes and thresholds (key 2).
type Overlay struct {
	field     FieldView
	cellSize  int
	showHeat  bool
	showStats bool

	heatImg *ebiten.Image
	heatBuf []byte
	palette []color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(field FieldView, cellSize int) *Overlay {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Overlay{field: field, cellSize: cellSize, palette: heatPalette()}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeat = !o.showHeat
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStats = !o.showStats
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.field.Size()
	if size.Cells() == 0 {
		return
	}
	if o.showHeat {
		o.drawHeat(screen, size)
	}
	if o.showStats {
		msg := fmt.Sprintf("min %.1f  max %.1f\nthresholds %v", o.field.Min(), o.field.Max(), o.field.Thresholds())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (o *Overlay) drawHeat(screen *ebiten.Image, size core.Size) {
	if o.heatImg == nil || o.heatImg.Bounds().Dx() != size.W || o.heatImg.Bounds().Dy() != size.H {
		o.heatImg = ebiten.NewImage(size.W, size.H)
		o.heatBuf = make([]byte, 4*size.Cells())
	}
	render.FillHeatmapRGBA(o.heatBuf, o.field.Matrix(), o.field.Min(), o.field.Max(), o.palette)
	o.heatImg.WritePixels(o.heatBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.cellSize), float64(o.cellSize))
	op.ColorScale.ScaleAlpha(0.6)
	screen.DrawImage(o.heatImg, op)
}

func heatPalette() []color.RGBA {
	palette := make([]color.RGBA, 64)
	for i := range palette {
		v := uint8(i * 4)
		palette[i] = color.RGBA{R: v, G: v / 2, B: 255 - v, A: 255}
	}
	return palette
}
