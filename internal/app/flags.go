package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"contour-lines/internal/core"
	"contour-lines/internal/field"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ID        string
	Preset    string
	Width     int
	Height    int
	CellSize  int
	TPS       int
	Ping      time.Duration
	Force     float64
	DecayTime time.Duration
	HUDWidth  int
	Verbose   bool
	Set       KV
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ID:        "topography",
		Preset:    "empty",
		Width:     960,
		Height:    640,
		CellSize:  8,
		TPS:       60,
		Ping:      15 * time.Millisecond,
		Force:     8,
		DecayTime: 2 * time.Second,
		HUDWidth:  220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ID, "id", c.ID, "identity of the field, used in logs")
	fs.StringVar(&c.Preset, "preset", c.Preset, "initial preset: empty or random")
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "pixels per grid cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.DurationVar(&c.Ping, "ping", c.Ping, "time between contour updates")
	fs.Float64Var(&c.Force, "force", c.Force, "height added while the pointer moves")
	fs.DurationVar(&c.DecayTime, "decay", c.DecayTime, "time before a resting pointer stops raising")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel, 0 hides it")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
	fs.Var(&c.Set, "set", "field parameter override in key=value form (repeatable)")
}

// Resolution returns the pixel-to-grid mapping of the canvas.
func (c *Config) Resolution() core.Resolution {
	return core.Resolution{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
}

// NewField builds the field described by the configuration.
func (c *Config) NewField() (*field.Field, error) {
	preset, err := field.ParsePreset(c.Preset)
	if err != nil {
		return nil, err
	}
	fcfg, err := field.FromMap(c.Set.Map())
	if err != nil {
		return nil, err
	}
	return field.New(c.ID, c.Resolution().Grid(), preset, fcfg)
}

// KV collects repeatable key=value flags.
type KV []string

func (l *KV) String() string {
	return strings.Join(*l, ",")
}

// Set appends a key=value pair.
func (l *KV) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KV) Map() map[string]string {
	if len(l) == 0 {
		return nil
	}
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}
