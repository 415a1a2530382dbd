//go:build ebiten

package app

import (
	"image"
	"image/color"
	"time"

	"contour-lines/internal/core"
	"contour-lines/internal/field"
	"contour-lines/internal/isoband"
	"contour-lines/internal/render"
	"contour-lines/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Game adapts a height field to the ebiten.Game interface: the pointer raises
// the field and every tick re-contours it.
type Game struct {
	cfg     *Config
	field   *field.Field
	res     core.Resolution
	pointer *Pointer
	tick    *core.FixedStep
	overlay *ui.Overlay
	hud     *ui.HUD

	bands   []isoband.Band
	palette []color.RGBA

	vertices []ebiten.Vertex
	indices  []uint16

	paused bool
}

// New constructs a Game for the provided field.
func New(cfg *Config, f *field.Field) *Game {
	g := &Game{
		cfg:     cfg,
		field:   f,
		res:     cfg.Resolution(),
		pointer: NewPointer(cfg.Force, cfg.DecayTime),
		tick:    core.NewFixedStep(cfg.Ping),
		overlay: ui.NewOverlay(f, cfg.CellSize),
		hud:     ui.NewHUD(f, cfg.HUDWidth),
	}
	g.refresh()
	return g
}

// Update handles input and, once per ping, grows and re-contours the field.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.field.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.switchPreset()
	}

	g.overlay.Update()
	g.hud.Update(g.res.Width)

	now := time.Now()
	mx, my := ebiten.CursorPosition()
	cell, inside := g.res.CellAt(float64(mx), float64(my))
	g.pointer.Observe(cell, inside, now)

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		raise(g.field, cell, g.field.Config().ZDelta)
	}

	if !g.tick.ShouldStep() {
		return nil
	}
	if !g.paused {
		if p, force, ok := g.pointer.Tick(now); ok {
			raise(g.field, p, force)
		}
	}
	g.refresh()
	return nil
}

func (g *Game) switchPreset() {
	next, err := field.New(g.cfg.ID, g.field.Size(), g.field.Preset().Next(), g.field.Config())
	if err != nil {
		core.Logger().Warn("preset switch failed", "err", err)
		return
	}
	g.field = next
	g.overlay = ui.NewOverlay(next, g.cfg.CellSize)
	g.hud = ui.NewHUD(next, g.cfg.HUDWidth)
}

func (g *Game) refresh() {
	bands, err := g.field.Isobands()
	if err != nil {
		core.Logger().Warn("isoband extraction failed", "id", g.field.ID, "err", err)
		return
	}
	g.bands = bands
	if len(g.palette) != len(bands) {
		g.palette = render.BandPalette(len(bands))
	}
}

// Draw paints the bands, the overlay and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	scale := float32(g.cfg.CellSize)
	for i, b := range g.bands {
		var path vector.Path
		for _, ring := range b.Polygon {
			if len(ring) < 3 {
				continue
			}
			path.MoveTo(float32(ring[0].X)*scale, float32(ring[0].Y)*scale)
			for _, pt := range ring[1:] {
				path.LineTo(float32(pt.X)*scale, float32(pt.Y)*scale)
			}
			path.Close()
		}
		g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
		g.drawTriangles(screen, g.palette[i], ebiten.EvenOdd)

		g.vertices, g.indices = path.AppendVerticesAndIndicesForStroke(g.vertices[:0], g.indices[:0], &vector.StrokeOptions{Width: 1})
		g.drawTriangles(screen, render.LineColor, ebiten.FillAll)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.res.Width, g.res.Height)
}

func (g *Game) drawTriangles(screen *ebiten.Image, c color.RGBA, rule ebiten.FillRule) {
	r, gr, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range g.vertices {
		v := &g.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, gr, b, a
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: rule, AntiAlias: true}
	screen.DrawTriangles(g.vertices, g.indices, whiteSubImage, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	hud := g.cfg.HUDWidth
	if hud < 0 {
		hud = 0
	}
	return g.res.Width + hud, g.res.Height
}
