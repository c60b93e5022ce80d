// pkg/render/surface.go
package render

import "image/color"

// Surface is a 2D drawing target with canvas-like path semantics: the
// current path survives Fill and Stroke and is dropped only by BeginPath.
// Coordinates are surface-local pixels.
type Surface interface {
	ClearRect(x, y, w, h float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Circle adds a closed circular subpath.
	Circle(x, y, r float64)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	Stroke()
	Fill()
}
