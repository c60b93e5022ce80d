package config

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, s.StrokeColor())
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, s.FillColor())
	assert.Len(t, s.PaletteColors(), len(DefaultPalette))
	w, h := s.ScreenSize()
	assert.Equal(t, ScreenWidth, w)
	assert.Equal(t, ScreenHeight, h)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polyedit.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
canvas_width: 640
stroke: "#0000ff"
line_width: 3
palette: ["#111111", "#222222"]
log_level: debug
`), 0o644))
	t.Setenv("POLYEDIT_LINE_WIDTH", "5")
	t.Setenv("POLYEDIT_FILL", "#abcdef")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, s.CanvasWidth)
	assert.Equal(t, CanvasHeight, s.CanvasHeight, "keys absent from the file keep defaults")
	assert.Equal(t, "#0000ff", s.Stroke)
	assert.Equal(t, 5.0, s.LineWidth, "environment wins over the file")
	assert.Equal(t, color.RGBA{0xab, 0xcd, 0xef, 255}, s.FillColor())
	assert.Equal(t, []string{"#111111", "#222222"}, s.Palette)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("canvas_width: [1, 2"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to unmarshal config")
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	s := Default()
	env := map[string]string{"POLYEDIT_CANVAS_WIDTH": "wide"}
	err := s.applyEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok })
	assert.ErrorContains(t, err, "POLYEDIT_CANVAS_WIDTH")
}

func TestApplyEnvPalette(t *testing.T) {
	s := Default()
	env := map[string]string{"POLYEDIT_PALETTE": "#000000,#ffffff", "POLYEDIT_CLOSE_THRESHOLD": "12.5"}
	require.NoError(t, s.applyEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok }))
	assert.Equal(t, []string{"#000000", "#ffffff"}, s.Palette)
	assert.Equal(t, 12.5, s.CloseThreshold)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Settings){
		"zero canvas":      func(s *Settings) { s.CanvasWidth = 0 },
		"negative panel":   func(s *Settings) { s.PanelWidth = -1 },
		"zero width":       func(s *Settings) { s.LineWidth = 0 },
		"huge width":       func(s *Settings) { s.LineWidth = MaxLineWidth + 1 },
		"zero threshold":   func(s *Settings) { s.CloseThreshold = 0 },
		"zero hit radius":  func(s *Settings) { s.VertexHitRadius = 0 },
		"negative marker":  func(s *Settings) { s.MarkerRadius = -1 },
		"bad stroke":       func(s *Settings) { s.Stroke = "red" },
		"bad fill":         func(s *Settings) { s.Fill = "#12" },
		"bad palette item": func(s *Settings) { s.Palette = []string{"#000000", "nope"} },
		"bad log level":    func(s *Settings) { s.LogLevel = "loud" },
		"bad log format":   func(s *Settings) { s.LogFormat = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := Default()
			mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	s := Default()
	s.LogLevel = "debug"
	s.LogFormat = "json"
	var buf bytes.Buffer
	log := NewLogger(s, &buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("polygon_id", 3).Info("polygon committed")
	assert.Contains(t, buf.String(), `"polygon_id":3`)
	assert.Contains(t, buf.String(), `"msg":"polygon committed"`)

	s.LogFormat = "text"
	assert.IsType(t, &logrus.TextFormatter{}, NewLogger(s, &buf).Formatter)
}
