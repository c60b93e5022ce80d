// pkg/render/ggsurf/surface.go
package ggsurf

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/sirupsen/logrus"

	"go-polygon-editor/pkg/render"
)

// Surface renders onto an offscreen gg context. It backs PNG snapshots and
// pixel-level tests, and needs no window.
type Surface struct {
	dc     *gg.Context
	bg     color.Color
	stroke color.Color
	fill   color.Color
	log    logrus.FieldLogger
}

var _ render.Surface = (*Surface)(nil)

// New allocates a w x h surface whose ClearRect paints bg.
func New(w, h int, bg color.Color, log logrus.FieldLogger) *Surface {
	dc := gg.NewContext(w, h)
	dc.SetLineJoin(gg.LineJoinMiter)
	dc.SetFillRule(gg.FillRuleNonZero)
	return &Surface{
		dc:     dc,
		bg:     bg,
		stroke: color.Black,
		fill:   color.Black,
		log:    log,
	}
}

// ClearRect paints the background over the rectangle. The current path is
// dropped.
func (s *Surface) ClearRect(x, y, w, h float64) {
	s.dc.ClearPath()
	if x <= 0 && y <= 0 && x+w >= float64(s.dc.Width()) && y+h >= float64(s.dc.Height()) {
		s.dc.ClearWithColor(gg.FromColor(s.bg))
		return
	}
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(s.bg)
	s.report("clear", s.dc.Fill())
}

func (s *Surface) BeginPath()             { s.dc.ClearPath() }
func (s *Surface) MoveTo(x, y float64)    { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64)    { s.dc.LineTo(x, y) }
func (s *Surface) ClosePath()             { s.dc.ClosePath() }
func (s *Surface) Circle(x, y, r float64) { s.dc.DrawCircle(x, y, r) }

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *Surface) SetFillColor(c color.Color)   { s.fill = c }
func (s *Surface) SetLineWidth(w float64)       { s.dc.SetLineWidth(w) }

func (s *Surface) Stroke() {
	s.dc.SetColor(s.stroke)
	s.report("stroke", s.dc.StrokePreserve())
}

func (s *Surface) Fill() {
	s.dc.SetColor(s.fill)
	s.report("fill", s.dc.FillPreserve())
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// WritePNG encodes the current pixels as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current pixels to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

func (s *Surface) Close() error {
	return s.dc.Close()
}

// Render ops have no error channel of their own; failures only get logged.
func (s *Surface) report(op string, err error) {
	if err != nil && s.log != nil {
		s.log.WithError(err).WithField("op", op).Warn("gg draw failed")
	}
}
