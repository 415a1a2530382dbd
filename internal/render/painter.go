package render

import (
	"fmt"
	"image/color"
	"io"

	"contour-lines/internal/core"
	"contour-lines/internal/isoband"

	"github.com/gogpu/gg"
	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// Painter rasterises isobands into an image, scaling grid coordinates by
// Scale pixels per cell.
type Painter struct {
	Scale     float64
	LineWidth float64
	Palette   []color.RGBA
}

// NewPainter returns a painter with outlines of one pixel.
func NewPainter(scale float64) *Painter {
	if scale <= 0 {
		scale = 1
	}
	return &Painter{Scale: scale, LineWidth: 1}
}

// Paint draws bands onto a fresh context sized for the grid. The caller owns
// the returned context and must Close it.
func (p *Painter) Paint(size core.Size, bands []isoband.Band) (*gg.Context, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	w := int(float64(size.W)*p.Scale + 0.5)
	h := int(float64(size.H)*p.Scale + 0.5)
	dc := gg.NewContext(w, h)

	dc.SetColor(Background)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	if err := dc.Fill(); err != nil {
		return dc, err
	}

	palette := p.Palette
	if len(palette) < len(bands) {
		palette = BandPalette(len(bands))
	}
	dc.SetFillRule(gg.FillRuleEvenOdd)
	for i, b := range bands {
		p.trace(dc, b)
		dc.SetColor(palette[i])
		if p.LineWidth <= 0 {
			if err := dc.Fill(); err != nil {
				return dc, fmt.Errorf("fill band [%v,%v): %w", b.Lower, b.Upper, err)
			}
			continue
		}
		if err := dc.FillPreserve(); err != nil {
			return dc, fmt.Errorf("fill band [%v,%v): %w", b.Lower, b.Upper, err)
		}
		dc.SetColor(LineColor)
		dc.SetLineWidth(p.LineWidth)
		if err := dc.Stroke(); err != nil {
			return dc, fmt.Errorf("stroke band [%v,%v): %w", b.Lower, b.Upper, err)
		}
	}
	return dc, nil
}

func (p *Painter) trace(dc *gg.Context, b isoband.Band) {
	for _, ring := range b.Polygon {
		if len(ring) < 3 {
			continue
		}
		dc.MoveTo(ring[0].X*p.Scale, ring[0].Y*p.Scale)
		for _, pt := range ring[1:] {
			dc.LineTo(pt.X*p.Scale, pt.Y*p.Scale)
		}
		dc.ClosePath()
	}
}

// EncodePNG paints bands and writes them to w as PNG.
func (p *Painter) EncodePNG(w io.Writer, size core.Size, bands []isoband.Band) (err error) {
	dc, err := p.Paint(size, bands)
	if dc != nil {
		defer func() { err = multierr.Append(err, dc.Close()) }()
	}
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// WritePNG paints bands into the named file of fs.
func (p *Painter) WritePNG(fs billy.Filesystem, name string, size core.Size, bands []isoband.Band) (err error) {
	f, err := fs.Create(name)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()
	if err := p.EncodePNG(f, size, bands); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	core.Logger().Debug("bands written", "file", name, "bands", len(bands))
	return nil
}
