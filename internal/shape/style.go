// internal/shape/style.go
package shape

import "image/color"

// Style holds the drawing parameters of a polygon.
type Style struct {
	Stroke    color.RGBA
	Fill      color.RGBA
	LineWidth float64
}

// StyleChange names exactly one style field and its new value.
// Implementations: StrokeColor, FillColor, LineWidth.
type StyleChange interface {
	apply(s *Style)
	Field() string
}

// StrokeColor sets Style.Stroke.
type StrokeColor color.RGBA

// FillColor sets Style.Fill.
type FillColor color.RGBA

// LineWidth sets Style.LineWidth.
type LineWidth float64

func (c StrokeColor) apply(s *Style) { s.Stroke = color.RGBA(c) }
func (c FillColor) apply(s *Style)   { s.Fill = color.RGBA(c) }
func (w LineWidth) apply(s *Style)   { s.LineWidth = float64(w) }

func (StrokeColor) Field() string { return "stroke" }
func (FillColor) Field() string   { return "fill" }
func (LineWidth) Field() string   { return "line_width" }

// With returns a copy of s with change applied.
func (s Style) With(change StyleChange) Style {
	change.apply(&s)
	return s
}
