package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Mavwarf/iconkit/internal/paths"
)

// Defaults mirror the archived generator scripts: a 1024px canvas, the
// logo scaled to 60% of it, and an opaque black background.
const (
	DefaultSize       = 1024
	DefaultScale      = 0.6
	DefaultBackground = "#000000"
	DefaultSource     = "assets/logo.png"
)

// Options holds global settings parsed from the "config" key.
type Options struct {
	Size       int     `json:"size,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	Background string  `json:"background,omitempty"`
	OutDir     string  `json:"out_dir,omitempty"`
}

// Config holds the top-level configuration: global options and targets.
type Config struct {
	Options Options           `json:"config"`
	Targets map[string]Target `json:"targets"`
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	c.Options.Size = DefaultSize
	c.Options.Scale = DefaultScale
	c.Options.Background = DefaultBackground
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Target describes a single asset to generate.
type Target struct {
	Kind       string   `json:"kind"`                 // "composite" | "placeholder"
	Source     string   `json:"source,omitempty"`     // kind=composite: logo image (PNG, JPEG or SVG)
	Size       int      `json:"size,omitempty"`       // canvas size in px, 0 = global
	Scale      float64  `json:"scale,omitempty"`      // logo fraction of canvas, 0 = global
	Background string   `json:"background,omitempty"` // hex color, "" = global
	Outputs    []string `json:"outputs"`              // .ico outputs are ICO-encoded, the rest PNG
	Variants   []int    `json:"variants,omitempty"`   // extra square sizes, kind=composite only
}

// Default returns the built-in configuration, which reproduces the two
// archived scripts exactly: "icon" composites assets/logo.png onto black and
// writes icon.png + adaptive-icon.png, "logo" draws the placeholder mark.
func Default() Config {
	return Config{
		Options: Options{
			Size:       DefaultSize,
			Scale:      DefaultScale,
			Background: DefaultBackground,
		},
		Targets: map[string]Target{
			"icon": {
				Kind:    "composite",
				Source:  DefaultSource,
				Outputs: []string{"assets/icon.png", "assets/adaptive-icon.png"},
			},
			"logo": {
				Kind:    "placeholder",
				Outputs: []string{DefaultSource},
			},
		},
	}
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. iconkit.json next to the running binary
//  3. ~/.config/iconkit/iconkit.json
//
// When no file exists the built-in Default() is returned, so the tool
// works with zero setup.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	p := filepath.Join(paths.DataDir(), paths.ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return readConfig(p)
	}

	return Default(), nil
}

// Resolve looks up a target by name. Names absent from the loaded config
// fall back to the built-in "icon" and "logo" targets.
func Resolve(cfg Config, name string) (*Target, error) {
	if t, ok := cfg.Targets[name]; ok {
		if err := validate(name, &t); err != nil {
			return nil, err
		}
		return &t, nil
	}
	if t, ok := Default().Targets[name]; ok {
		return &t, nil
	}
	return nil, fmt.Errorf("target %q not found in config or built-in defaults", name)
}

func validate(name string, t *Target) error {
	switch t.Kind {
	case "composite", "placeholder":
	default:
		return fmt.Errorf("target %q: unknown kind %q", name, t.Kind)
	}
	if len(t.Outputs) == 0 {
		return fmt.Errorf("target %q: no outputs configured", name)
	}
	if t.Size < 0 {
		return fmt.Errorf("target %q: size must not be negative, got %d", name, t.Size)
	}
	// Zero means "inherit the global value".
	if t.Scale < 0 || t.Scale > 1 {
		return fmt.Errorf("target %q: scale must be between 0 and 1, got %v", name, t.Scale)
	}
	if t.Background != "" {
		if _, err := ParseHexColor(t.Background); err != nil {
			return fmt.Errorf("target %q: %w", name, err)
		}
	}
	return nil
}

// ParseHexColor parses a "#rgb" or "#rrggbb" string into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid color %q (want #rgb or #rrggbb)", s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q (want #rgb or #rrggbb)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
