// Package config provides the startup configuration: which pattern to show
// and the numeric parameters of every pattern. Configs can be loaded from
// JSON, YAML or TOML files and always start from DefaultConfig.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/fractals/internal/fractal"
)

// Config holds everything needed to open the window and build patterns
type Config struct {
	Window  WindowConfig `json:"window" yaml:"window" toml:"window"`
	Pattern Kind         `json:"pattern" yaml:"pattern" toml:"pattern"`
	Colors  ColorConfig  `json:"colors" yaml:"colors" toml:"colors"`

	Spiral     SpiralConfig     `json:"spiral" yaml:"spiral" toml:"spiral"`
	Koch       KochConfig       `json:"koch" yaml:"koch" toml:"koch"`
	Sierpinski SierpinskiConfig `json:"sierpinski" yaml:"sierpinski" toml:"sierpinski"`
	Tree       TreeConfig       `json:"tree" yaml:"tree" toml:"tree"`
}

// WindowConfig defines the window and frame rate
type WindowConfig struct {
	Width  int    `json:"width" yaml:"width" toml:"width"`
	Height int    `json:"height" yaml:"height" toml:"height"`
	Title  string `json:"title" yaml:"title" toml:"title"`
	TPS    int    `json:"tps" yaml:"tps" toml:"tps"` // Updates per second
	HUD    bool   `json:"hud" yaml:"hud" toml:"hud"` // Show the pattern name and key help
}

// ColorConfig holds hex colors like "#ffffff"
type ColorConfig struct {
	Background string `json:"background" yaml:"background" toml:"background"`
	Foreground string `json:"foreground" yaml:"foreground" toml:"foreground"`
}

// Offset is a position relative to the viewport center
type Offset struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// SpiralConfig defines the spiral's first arm
type SpiralConfig struct {
	Origin    Offset  `json:"origin" yaml:"origin" toml:"origin"`
	Length    float64 `json:"length" yaml:"length" toml:"length"`
	Angle     float64 `json:"angle" yaml:"angle" toml:"angle"` // Radians
	Thickness float64 `json:"thickness" yaml:"thickness" toml:"thickness"`
}

// KochConfig defines the snowflake
type KochConfig struct {
	Size      float64 `json:"size" yaml:"size" toml:"size"`
	Depth     int     `json:"depth" yaml:"depth" toml:"depth"`
	GrowTo    int     `json:"grow_to" yaml:"grow_to" toml:"grow_to"` // Animated only; 0 keeps Depth
	Thickness float64 `json:"thickness" yaml:"thickness" toml:"thickness"`
	Rainbow   bool    `json:"rainbow" yaml:"rainbow" toml:"rainbow"` // Color segments by generation order
}

// SierpinskiConfig defines the triangle
type SierpinskiConfig struct {
	Size  float64 `json:"size" yaml:"size" toml:"size"`
	Depth int     `json:"depth" yaml:"depth" toml:"depth"`
}

// TreeConfig defines the tree trunk and its sway
type TreeConfig struct {
	Origin    Offset      `json:"origin" yaml:"origin" toml:"origin"`
	Length    float64     `json:"length" yaml:"length" toml:"length"`
	Thickness float64     `json:"thickness" yaml:"thickness" toml:"thickness"`
	Noise     NoiseConfig `json:"noise" yaml:"noise" toml:"noise"`
}

// NoiseConfig defines the rotation field used by the animated tree
type NoiseConfig struct {
	Enabled   bool    `json:"enabled" yaml:"enabled" toml:"enabled"`
	Seed      int64   `json:"seed" yaml:"seed" toml:"seed"`
	Frequency float64 `json:"frequency" yaml:"frequency" toml:"frequency"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude" toml:"amplitude"` // Degrees per tick
	MaxSway   float64 `json:"max_sway" yaml:"max_sway" toml:"max_sway"`    // Degrees, 0 = unbounded
}

// DefaultConfig returns the settings of the classic 800x600 viewer
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Fractals",
			TPS:    15,
			HUD:    true,
		},
		Pattern: KindKochAnimated,
		Colors: ColorConfig{
			Background: "#ffffff",
			Foreground: "#000000",
		},
		Spiral: SpiralConfig{
			Length:    75,
			Angle:     0,
			Thickness: 1,
		},
		Koch: KochConfig{
			Size:      400,
			Depth:     4,
			Thickness: 1,
		},
		Sierpinski: SierpinskiConfig{
			Size:  500,
			Depth: 6,
		},
		Tree: TreeConfig{
			Origin:    Offset{X: 0, Y: 280},
			Length:    150,
			Thickness: 5,
			Noise: NoiseConfig{
				Enabled:   true,
				Seed:      1,
				Frequency: 0.05,
				Amplitude: 2,
				MaxSway:   15,
			},
		},
	}
}

// LoadConfig loads a config file on top of the defaults. The format follows
// the extension: .json, .yaml/.yml or .toml. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, filepath.Ext(path), config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Decode unmarshals data in the format named by ext into config.
func Decode(data []byte, ext string, config *Config) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return json.Unmarshal(data, config)
	case "yaml", "yml":
		return yaml.Unmarshal(data, config)
	case "toml":
		return toml.Unmarshal(data, config)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// Validate checks every parameter before any pattern is built
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS < 1 || c.Window.TPS > 240 {
		return fmt.Errorf("invalid config: tps %d out of range [1, 240]", c.Window.TPS)
	}
	if !c.Pattern.Valid() {
		return fmt.Errorf("invalid config: unknown pattern %v", c.Pattern)
	}
	if _, err := ParseColor(c.Colors.Background); err != nil {
		return fmt.Errorf("invalid config: background: %w", err)
	}
	if _, err := ParseColor(c.Colors.Foreground); err != nil {
		return fmt.Errorf("invalid config: foreground: %w", err)
	}

	if !finite(
		c.Spiral.Origin.X, c.Spiral.Origin.Y, c.Spiral.Length, c.Spiral.Angle, c.Spiral.Thickness,
		c.Koch.Size, c.Koch.Thickness,
		c.Sierpinski.Size,
		c.Tree.Origin.X, c.Tree.Origin.Y, c.Tree.Length, c.Tree.Thickness,
		c.Tree.Noise.Frequency, c.Tree.Noise.Amplitude, c.Tree.Noise.MaxSway,
	) {
		return fmt.Errorf("invalid config: pattern parameters must be finite numbers")
	}

	if c.Spiral.Length <= 0 {
		return fmt.Errorf("invalid config: spiral length %g must be positive", c.Spiral.Length)
	}
	if c.Spiral.Thickness <= 0 {
		return fmt.Errorf("invalid config: spiral thickness %g must be positive", c.Spiral.Thickness)
	}

	if c.Koch.Size <= 0 || c.Koch.Thickness <= 0 {
		return fmt.Errorf("invalid config: koch size %g and thickness %g must be positive", c.Koch.Size, c.Koch.Thickness)
	}
	if c.Koch.Depth < 0 || c.Koch.Depth > fractal.MaxKochDepth {
		return fmt.Errorf("invalid config: koch depth %d out of range [0, %d]", c.Koch.Depth, fractal.MaxKochDepth)
	}
	if c.Koch.GrowTo < 0 || c.Koch.GrowTo > fractal.MaxKochDepth {
		return fmt.Errorf("invalid config: koch grow_to %d out of range [0, %d]", c.Koch.GrowTo, fractal.MaxKochDepth)
	}

	if c.Sierpinski.Size <= 0 {
		return fmt.Errorf("invalid config: sierpinski size %g must be positive", c.Sierpinski.Size)
	}
	if c.Sierpinski.Depth < 0 || c.Sierpinski.Depth > fractal.MaxSierpinskiDepth {
		return fmt.Errorf("invalid config: sierpinski depth %d out of range [0, %d]", c.Sierpinski.Depth, fractal.MaxSierpinskiDepth)
	}

	if c.Tree.Length <= 0 || c.Tree.Thickness <= 0 {
		return fmt.Errorf("invalid config: tree length %g and thickness %g must be positive", c.Tree.Length, c.Tree.Thickness)
	}
	if d := fractal.TreeDepth(c.Tree.Length); d > fractal.MaxTreeDepth {
		return fmt.Errorf("invalid config: tree length %g branches %d levels deep, limit is %d", c.Tree.Length, d, fractal.MaxTreeDepth)
	}
	if c.Tree.Noise.Frequency < 0 || c.Tree.Noise.Amplitude < 0 || c.Tree.Noise.MaxSway < 0 {
		return fmt.Errorf("invalid config: tree noise parameters must not be negative")
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// BackgroundColor returns the parsed background color.
func (c *Config) BackgroundColor() color.Color {
	return colorOrBlack(c.Colors.Background)
}

// ForegroundColor returns the parsed foreground color.
func (c *Config) ForegroundColor() color.Color {
	return colorOrBlack(c.Colors.Foreground)
}

// ParseColor parses a hex color such as "#1e90ff".
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("bad color %q: %w", s, err)
	}
	return c, nil
}

func colorOrBlack(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return color.Black
	}
	return c
}

// Hue returns a fully saturated color at the given position in [0, 1] of the
// color wheel. It is used to trace generation order.
func Hue(t float64) color.Color {
	return colorful.Hsv(t*360, 1, 1).Clamped()
}
