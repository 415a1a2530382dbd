// Command topo-render grows a height field headlessly along a seeded random
// walk and writes its isobands to a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"contour-lines/internal/app"
	"contour-lines/internal/core"
	"contour-lines/internal/field"
	"contour-lines/internal/render"
	pcore "contour-lines/pkg/core"

	"gopkg.in/src-d/go-billy.v4/osfs"
)

func main() {
	presetName := flag.String("preset", "empty", "initial preset: empty or random")
	width := flag.Int("width", 120, "grid width in cells")
	height := flag.Int("height", 80, "grid height in cells")
	steps := flag.Int("steps", 400, "number of random-walk raises")
	force := flag.Float64("force", 8, "height deposited per step")
	seed := flag.Int64("seed", 1337, "seed for the walk")
	scale := flag.Float64("scale", 8, "pixels per cell")
	out := flag.String("out", "contours.png", "output PNG path")
	verbose := flag.Bool("v", false, "debug logging")
	var overrides app.KV
	flag.Var(&overrides, "set", "field parameter override in key=value form (repeatable)")
	flag.Parse()

	if *verbose {
		core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	preset, err := field.ParsePreset(*presetName)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := field.FromMap(overrides.Map())
	if err != nil {
		log.Fatal(err)
	}
	f, err := field.New("topo-render", core.Size{W: *width, H: *height}, preset, cfg)
	if err != nil {
		log.Fatal(err)
	}

	walk(f, *steps, *force, *seed)

	bands, err := f.Isobands()
	if err != nil {
		log.Fatal(err)
	}
	stats := f.Stats()
	fmt.Printf("field %dx%d: min %.2f max %.2f mean %.2f, %d bands\n",
		*width, *height, stats.Min, stats.Max, stats.Mean, len(bands))

	dir, name := filepath.Split(*out)
	if dir == "" {
		dir = "."
	}
	if err := render.NewPainter(*scale).WritePNG(osfs.New(dir), name, f.Size(), bands); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *out)
}

// walk raises the field along a random walk that starts at the centre and
// stays inside the grid.
func walk(f *field.Field, steps int, force float64, seed int64) {
	rng := pcore.NewRNG(seed)
	size := f.Size()
	p := core.Point{X: size.W / 2, Y: size.H / 2}
	density := f.Config().Density
	for i := 0; i < steps; i++ {
		if err := f.Raise(p, force, density); err != nil {
			log.Fatal(err)
		}
		d := core.Moore[rng.IntN(len(core.Moore))]
		next := p.Add(d[0], d[1])
		if size.Contains(next) {
			p = next
		}
	}
}
