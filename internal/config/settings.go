// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"go-polygon-editor/pkg/render"
)

// EnvPrefix prefixes every environment override, e.g. POLYEDIT_STROKE.
const EnvPrefix = "POLYEDIT_"

// Settings is the runtime configuration. Zero values never reach the editor:
// Load starts from Default and validates the result.
type Settings struct {
	CanvasWidth     int      `yaml:"canvas_width"`
	CanvasHeight    int      `yaml:"canvas_height"`
	PanelWidth      int      `yaml:"panel_width"`
	Stroke          string   `yaml:"stroke"`
	Fill            string   `yaml:"fill"`
	LineWidth       float64  `yaml:"line_width"`
	CloseThreshold  float64  `yaml:"close_threshold"`
	VertexHitRadius float64  `yaml:"vertex_hit_radius"`
	MarkerRadius    float64  `yaml:"marker_radius"`
	Palette         []string `yaml:"palette"`
	SnapshotDir     string   `yaml:"snapshot_dir"`
	LogLevel        string   `yaml:"log_level"`
	LogFormat       string   `yaml:"log_format"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		CanvasWidth:     CanvasWidth,
		CanvasHeight:    CanvasHeight,
		PanelWidth:      PanelWidth,
		Stroke:          DefaultStroke,
		Fill:            DefaultFill,
		LineWidth:       DefaultLineWidth,
		CloseThreshold:  CloseThreshold,
		VertexHitRadius: VertexHitRadius,
		MarkerRadius:    MarkerRadius,
		Palette:         append([]string(nil), DefaultPalette...),
		SnapshotDir:     SnapshotDir,
		LogLevel:        DefaultLogLvl,
		LogFormat:       "text",
	}
}

// Load builds settings from defaults, then an optional .env file in the
// working directory, then the YAML file at path (skipped when path is
// empty), then POLYEDIT_* environment variables.
func Load(path string) (Settings, error) {
	s := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("failed to load .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
		}
	}

	if err := s.applyEnv(os.LookupEnv); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *float64) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = f
		return nil
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
		return nil
	}

	str("STROKE", &s.Stroke)
	str("FILL", &s.Fill)
	str("SNAPSHOT_DIR", &s.SnapshotDir)
	str("LOG_LEVEL", &s.LogLevel)
	str("LOG_FORMAT", &s.LogFormat)
	if v, ok := lookup(EnvPrefix + "PALETTE"); ok {
		s.Palette = strings.Split(v, ",")
	}

	for _, f := range []func() error{
		func() error { return integer("CANVAS_WIDTH", &s.CanvasWidth) },
		func() error { return integer("CANVAS_HEIGHT", &s.CanvasHeight) },
		func() error { return integer("PANEL_WIDTH", &s.PanelWidth) },
		func() error { return num("LINE_WIDTH", &s.LineWidth) },
		func() error { return num("CLOSE_THRESHOLD", &s.CloseThreshold) },
		func() error { return num("VERTEX_HIT_RADIUS", &s.VertexHitRadius) },
		func() error { return num("MARKER_RADIUS", &s.MarkerRadius) },
	} {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks ranges and color syntax.
func (s Settings) Validate() error {
	if s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		return fmt.Errorf("canvas_width/canvas_height must be positive, got %dx%d", s.CanvasWidth, s.CanvasHeight)
	}
	if s.PanelWidth < 0 {
		return fmt.Errorf("panel_width must not be negative, got %d", s.PanelWidth)
	}
	if s.LineWidth <= 0 || s.LineWidth > MaxLineWidth {
		return fmt.Errorf("line_width must be in (0, %v], got %v", MaxLineWidth, s.LineWidth)
	}
	if s.CloseThreshold <= 0 {
		return fmt.Errorf("close_threshold must be positive, got %v", s.CloseThreshold)
	}
	if s.VertexHitRadius <= 0 {
		return fmt.Errorf("vertex_hit_radius must be positive, got %v", s.VertexHitRadius)
	}
	if s.MarkerRadius < 0 {
		return fmt.Errorf("marker_radius must not be negative, got %v", s.MarkerRadius)
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return fmt.Errorf("log_format must be text or json, got %q", s.LogFormat)
	}
	if _, err := render.ParseHex(s.Stroke); err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	if _, err := render.ParseHex(s.Fill); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	for i, c := range s.Palette {
		if _, err := render.ParseHex(c); err != nil {
			return fmt.Errorf("palette[%d]: %w", i, err)
		}
	}
	return nil
}

// StrokeColor returns the parsed default stroke. Call after Validate.
func (s Settings) StrokeColor() color.RGBA {
	c, _ := render.ParseHex(s.Stroke)
	return c
}

// FillColor returns the parsed default fill. Call after Validate.
func (s Settings) FillColor() color.RGBA {
	c, _ := render.ParseHex(s.Fill)
	return c
}

// PaletteColors returns the parsed palette. Call after Validate.
func (s Settings) PaletteColors() []color.RGBA {
	out := make([]color.RGBA, 0, len(s.Palette))
	for _, h := range s.Palette {
		c, _ := render.ParseHex(h)
		out = append(out, c)
	}
	return out
}

// ScreenSize is the full window: canvas plus side panel.
func (s Settings) ScreenSize() (int, int) {
	return s.CanvasWidth + s.PanelWidth, s.CanvasHeight
}
