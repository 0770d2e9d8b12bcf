// Package config loads the TOML configuration of the plotter
package config

import (
	"fmt"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termgraph/graph"
)

// Config is the full file layout
type Config struct {
	View      ViewConfig        `toml:"view"`
	Axes      AxesConfig        `toml:"axes"`
	Palette   PaletteConfig     `toml:"palette"`
	Functions []FunctionConfig  `toml:"function"`
	Keys      map[string]string `toml:"keys"`
	Audio     AudioConfig       `toml:"audio"`
	Log       LogConfig         `toml:"log"`
}

// ViewConfig is the initial viewport and pan step
type ViewConfig struct {
	OffsetX int `toml:"offset_x"`
	OffsetY int `toml:"offset_y"`
	Scale   int `toml:"scale"`
	PanStep int `toml:"pan_step"`
}

// AxesConfig controls the axes layer
type AxesConfig struct {
	Show       bool   `toml:"show"`
	OriginX    int    `toml:"origin_x"`
	OriginY    int    `toml:"origin_y"`
	Vertical   string `toml:"vertical"`
	Horizontal string `toml:"horizontal"`
	Origin     string `toml:"origin"`
}

// PaletteConfig lists markers cycled for functions without their own
type PaletteConfig struct {
	Markers []string `toml:"markers"`
}

// FunctionConfig is one plotted formula
type FunctionConfig struct {
	Expr   string `toml:"expr"`
	Marker string `toml:"marker"`
}

// AudioConfig controls curve sonification
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	DurationMs int     `toml:"duration_ms"`
	LowHz      float64 `toml:"low_hz"`
	HighHz     float64 `toml:"high_hz"`
}

// LogConfig controls file logging
type LogConfig struct {
	Debug bool `toml:"debug"`
}

// widthCond fixes ambiguous-width runes to one cell regardless of locale
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		View: ViewConfig{PanStep: 2},
		Axes: AxesConfig{
			Show:       true,
			Vertical:   string(graph.DefaultAxisGlyphs.Vertical),
			Horizontal: string(graph.DefaultAxisGlyphs.Horizontal),
			Origin:     string(graph.DefaultAxisGlyphs.Origin),
		},
		Palette: PaletteConfig{Markers: runesToStrings(graph.DefaultPalette)},
		Audio: AudioConfig{
			DurationMs: 2000,
			LowHz:      220,
			HighHz:     880,
		},
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result
// Keys not known to Config are rejected
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and glyphs
func (c *Config) Validate() error {
	if c.View.Scale < math.MinInt8 || c.View.Scale > math.MaxInt8 {
		return fmt.Errorf("view.scale %d outside [%d, %d]", c.View.Scale, math.MinInt8, math.MaxInt8)
	}
	if c.View.PanStep < 1 {
		return fmt.Errorf("view.pan_step must be at least 1, got %d", c.View.PanStep)
	}
	if _, err := c.AxisGlyphs(); err != nil {
		return err
	}
	if _, err := c.Markers(); err != nil {
		return err
	}
	for i, f := range c.Functions {
		if strings.TrimSpace(f.Expr) == "" {
			return fmt.Errorf("function[%d]: empty expr", i)
		}
		if f.Marker != "" {
			if _, err := Glyph(f.Marker); err != nil {
				return fmt.Errorf("function[%d].marker: %w", i, err)
			}
		}
	}
	if c.Audio.DurationMs < 0 {
		return fmt.Errorf("audio.duration_ms must not be negative")
	}
	if c.Audio.LowHz <= 0 || c.Audio.HighHz <= c.Audio.LowHz {
		return fmt.Errorf("audio: need 0 < low_hz < high_hz, got %v, %v", c.Audio.LowHz, c.Audio.HighHz)
	}
	return nil
}

// Viewport returns the configured initial viewport
func (c *Config) Viewport() graph.Viewport {
	return graph.Viewport{
		Offset: graph.Coord{X: c.View.OffsetX, Y: c.View.OffsetY},
		Scale:  int8(c.View.Scale),
	}
}

// AxisGlyphs returns the validated axis runes
func (c *Config) AxisGlyphs() (graph.AxisGlyphs, error) {
	var g graph.AxisGlyphs
	var err error
	if g.Vertical, err = Glyph(c.Axes.Vertical); err != nil {
		return g, fmt.Errorf("axes.vertical: %w", err)
	}
	if g.Horizontal, err = Glyph(c.Axes.Horizontal); err != nil {
		return g, fmt.Errorf("axes.horizontal: %w", err)
	}
	if g.Origin, err = Glyph(c.Axes.Origin); err != nil {
		return g, fmt.Errorf("axes.origin: %w", err)
	}
	return g, nil
}

// Markers returns the validated palette
func (c *Config) Markers() ([]rune, error) {
	if len(c.Palette.Markers) == 0 {
		return nil, fmt.Errorf("palette.markers: empty")
	}
	out := make([]rune, len(c.Palette.Markers))
	for i, s := range c.Palette.Markers {
		r, err := Glyph(s)
		if err != nil {
			return nil, fmt.Errorf("palette.markers[%d]: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// Glyph converts a config string to a single rune occupying one terminal cell
func Glyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("glyph %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("glyph %q is not valid UTF-8", s)
	}
	if w := widthCond.RuneWidth(r); w != 1 {
		return 0, fmt.Errorf("glyph %q has display width %d, want 1", s, w)
	}
	return r, nil
}

func runesToStrings(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
