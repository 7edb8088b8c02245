// Package config loads walk parameters and rendering options from a JSON
// file. Comments and trailing commas are accepted (HuJSON).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tailscale/hujson"

	"github.com/wesen/rigidwalk/pkg/palette"
	"github.com/wesen/rigidwalk/pkg/rigidwalk"
)

// MinOffset is the smallest offset the interactive viewers allow. Smaller
// offsets produce thousands of legs per walk.
const MinOffset = 0.5

const maxFileSize = 1 << 20

// Defaults for absent fields.
const (
	DefaultDisplacement = 300.0
	DefaultOffset       = 10.0
	DefaultAngleCount   = 36
	DefaultLineWidth    = 2.0
	DefaultWidth        = 800
	DefaultHeight       = 800
)

// Config holds every tunable. Nil fields fall back to the defaults above
// through the Get* accessors, so partial files are safe.
type Config struct {
	// Walk parameters
	AngleDegrees *float64 `json:"angle_degrees,omitempty"`
	Displacement *float64 `json:"displacement,omitempty"`
	Offset       *float64 `json:"offset,omitempty"`
	Directions   *string  `json:"directions,omitempty"` // "4" or "8"
	StartPrimary *bool    `json:"start_primary,omitempty"`
	AngleCount   *int     `json:"angle_count,omitempty"` // snowflake spokes

	// Rendering
	ShowGuides *bool    `json:"show_guides,omitempty"`
	Palette    []string `json:"palette,omitempty"`
	Background *string  `json:"background,omitempty"`
	LineWidth  *float64 `json:"line_width,omitempty"`
	Width      *int     `json:"width,omitempty"`
	Height     *int     `json:"height,omitempty"`
}

// Load reads and validates the config at path. The file must end in .json
// or .hujson and be at most 1 MiB.
func Load(path string) (*Config, error) {
	clean := filepath.Clean(path)
	switch ext := filepath.Ext(clean); ext {
	case ".json", ".hujson":
	default:
		return nil, fmt.Errorf("config file must have .json or .hujson extension, got %q", ext)
	}

	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a HuJSON document.
func Parse(data []byte) (*Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(std, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that are set.
func (c *Config) Validate() error {
	if c.Displacement != nil && *c.Displacement < 0 {
		return fmt.Errorf("displacement must be non-negative, got %g", *c.Displacement)
	}
	if c.Offset != nil && *c.Offset <= 0 {
		return fmt.Errorf("offset must be positive, got %g", *c.Offset)
	}
	if c.Directions != nil {
		if _, err := rigidwalk.ParseDirections(*c.Directions); err != nil {
			return fmt.Errorf("directions: %w", err)
		}
	}
	if c.AngleCount != nil && *c.AngleCount < 1 {
		return fmt.Errorf("angle_count must be at least 1, got %d", *c.AngleCount)
	}
	if len(c.Palette) > 0 {
		if _, err := palette.Parse(c.Palette); err != nil {
			return err
		}
	}
	if c.Background != nil {
		if _, err := colorful.Hex(*c.Background); err != nil {
			return fmt.Errorf("invalid background %q: %w", *c.Background, err)
		}
	}
	if c.LineWidth != nil && *c.LineWidth <= 0 {
		return fmt.Errorf("line_width must be positive, got %g", *c.LineWidth)
	}
	if c.Width != nil && *c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", *c.Width)
	}
	if c.Height != nil && *c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", *c.Height)
	}
	return nil
}

// GetAngle returns the single-walk angle in radians.
func (c *Config) GetAngle() float64 {
	if c.AngleDegrees == nil {
		return 0
	}
	return rigidwalk.Radians(*c.AngleDegrees)
}

// GetDisplacement returns the displacement or the default.
func (c *Config) GetDisplacement() float64 {
	if c.Displacement == nil {
		return DefaultDisplacement
	}
	return *c.Displacement
}

// GetOffset returns the offset or the default.
func (c *Config) GetOffset() float64 {
	if c.Offset == nil {
		return DefaultOffset
	}
	return *c.Offset
}

// GetDirections returns the quantization policy; 8-way unless set.
func (c *Config) GetDirections() rigidwalk.Directions {
	if c.Directions == nil {
		return rigidwalk.EightWay
	}
	d, err := rigidwalk.ParseDirections(*c.Directions)
	if err != nil {
		return rigidwalk.EightWay
	}
	return d
}

// GetStartPrimary returns start_primary; false unless set.
func (c *Config) GetStartPrimary() bool {
	return c.StartPrimary != nil && *c.StartPrimary
}

// GetAngleCount returns the number of snowflake spokes.
func (c *Config) GetAngleCount() int {
	if c.AngleCount == nil {
		return DefaultAngleCount
	}
	return *c.AngleCount
}

// GetShowGuides reports whether guide lines are drawn; true unless set.
func (c *Config) GetShowGuides() bool {
	return c.ShowGuides == nil || *c.ShowGuides
}

// GetPalette returns the configured palette or palette.Default.
func (c *Config) GetPalette() palette.Palette {
	if len(c.Palette) == 0 {
		return palette.Default()
	}
	p, err := palette.Parse(c.Palette)
	if err != nil {
		return palette.Default()
	}
	return p
}

// GetBackground returns the background color.
func (c *Config) GetBackground() colorful.Color {
	if c.Background != nil {
		if bg, err := colorful.Hex(*c.Background); err == nil {
			return bg
		}
	}
	return palette.MustHex(palette.DefaultBackground)
}

// GetLineWidth returns the raster stroke width in pixels.
func (c *Config) GetLineWidth() float64 {
	if c.LineWidth == nil {
		return DefaultLineWidth
	}
	return *c.LineWidth
}

// GetSize returns the raster image size in pixels.
func (c *Config) GetSize() (w, h int) {
	w, h = DefaultWidth, DefaultHeight
	if c.Width != nil {
		w = *c.Width
	}
	if c.Height != nil {
		h = *c.Height
	}
	return w, h
}

// ClampOffset raises offsets below MinOffset to MinOffset.
func ClampOffset(offset float64) float64 {
	return max(offset, MinOffset)
}

func ptr[T any](v T) *T { return &v }

// SetAngleDegrees, SetDisplacement and the other setters let command-line
// flags override values loaded from a file.
func (c *Config) SetAngleDegrees(v float64) { c.AngleDegrees = ptr(v) }

func (c *Config) SetDisplacement(v float64) { c.Displacement = ptr(v) }

func (c *Config) SetOffset(v float64) { c.Offset = ptr(v) }

func (c *Config) SetDirections(v string) { c.Directions = ptr(v) }

func (c *Config) SetStartPrimary(v bool) { c.StartPrimary = ptr(v) }

func (c *Config) SetAngleCount(v int) { c.AngleCount = ptr(v) }

func (c *Config) SetShowGuides(v bool) { c.ShowGuides = ptr(v) }

func (c *Config) SetSize(w, h int) { c.Width, c.Height = ptr(w), ptr(h) }
