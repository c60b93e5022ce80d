// pkg/render/renderer.go
package render

import (
	"image/color"

	"go-polygon-editor/pkg/geom"
)

// Shape is the renderer's view of one committed polygon.
type Shape struct {
	Points    []geom.Point
	Stroke    color.RGBA
	Fill      color.RGBA
	LineWidth float64
	// Markers draws a dot on every vertex (edit target).
	Markers bool
}

// Scene is everything needed to draw one frame.
type Scene struct {
	Width, Height float64
	Shapes        []Shape
	Draft         []geom.Point
	DraftStroke   color.RGBA
	DraftWidth    float64
	// Cursor, when set together with a non-empty Draft, adds the rubber-band
	// segment from the last draft point.
	Cursor *geom.Point
}

// Renderer draws scenes onto surfaces.
type Renderer struct {
	MarkerRadius float64
}

func NewRenderer(markerRadius float64) *Renderer {
	return &Renderer{MarkerRadius: markerRadius}
}

// Render clears the surface and draws the scene once.
func (r *Renderer) Render(s Surface, sc Scene) {
	s.ClearRect(0, 0, sc.Width, sc.Height)

	for _, sh := range sc.Shapes {
		r.drawShape(s, sh)
	}

	if len(sc.Draft) == 0 {
		return
	}
	s.SetLineWidth(sc.DraftWidth)
	s.SetStrokeColor(sc.DraftStroke)
	s.BeginPath()
	s.MoveTo(sc.Draft[0].X, sc.Draft[0].Y)
	for _, p := range sc.Draft[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()

	if sc.Cursor != nil {
		last := sc.Draft[len(sc.Draft)-1]
		s.BeginPath()
		s.MoveTo(last.X, last.Y)
		s.LineTo(sc.Cursor.X, sc.Cursor.Y)
		s.Stroke()
	}
}

func (r *Renderer) drawShape(s Surface, sh Shape) {
	if len(sh.Points) == 0 {
		return
	}
	s.BeginPath()
	s.MoveTo(sh.Points[0].X, sh.Points[0].Y)
	for _, p := range sh.Points[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.ClosePath()
	s.SetLineWidth(sh.LineWidth)
	s.SetFillColor(sh.Fill)
	s.Fill()
	s.SetStrokeColor(sh.Stroke)
	s.Stroke()

	if !sh.Markers {
		return
	}
	s.SetFillColor(MarkerColor)
	for _, p := range sh.Points {
		s.BeginPath()
		s.Circle(p.X, p.Y, r.MarkerRadius)
		s.Fill()
	}
}
