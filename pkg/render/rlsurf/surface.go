// pkg/render/rlsurf/surface.go
package rlsurf

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-polygon-editor/pkg/geom"
	"go-polygon-editor/pkg/render"
)

// Число сегментов для обводки маркеров.
const circleSegments = 36

// Surface draws with raylib immediate-mode calls. It must be used between
// rl.BeginDrawing and rl.EndDrawing. Origin offsets every coordinate.
type Surface struct {
	Origin geom.Point

	bg     rl.Color
	path   render.Path
	stroke rl.Color
	fill   rl.Color
	width  float32
}

var _ render.Surface = (*Surface)(nil)

func New(origin geom.Point, bg color.Color) *Surface {
	return &Surface{
		Origin: origin,
		bg:     toRL(bg),
		stroke: rl.Black,
		fill:   rl.Black,
		width:  1,
	}
}

func toRL(c color.Color) rl.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}

func (s *Surface) vec(p geom.Point) rl.Vector2 {
	return rl.NewVector2(float32(s.Origin.X+p.X), float32(s.Origin.Y+p.Y))
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	rl.DrawRectangleV(s.vec(geom.Pt(x, y)), rl.NewVector2(float32(w), float32(h)), s.bg)
}

func (s *Surface) BeginPath()             { s.path.Reset() }
func (s *Surface) MoveTo(x, y float64)    { s.path.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64)    { s.path.LineTo(x, y) }
func (s *Surface) ClosePath()             { s.path.Close() }
func (s *Surface) Circle(x, y, r float64) { s.path.Circle(x, y, r) }

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = toRL(c) }
func (s *Surface) SetFillColor(c color.Color)   { s.fill = toRL(c) }
func (s *Surface) SetLineWidth(w float64)       { s.width = float32(w) }

func (s *Surface) Fill() {
	for _, sp := range s.path.Subpaths {
		if sp.IsCircle {
			rl.DrawCircleV(s.vec(sp.Center), float32(sp.Radius), s.fill)
			continue
		}
		for _, tri := range fillTriangles(sp.Points) {
			rl.DrawTriangle(s.vec(tri[0]), s.vec(tri[1]), s.vec(tri[2]), s.fill)
		}
	}
}

func (s *Surface) Stroke() {
	for _, sp := range s.path.Subpaths {
		if sp.IsCircle {
			r := float32(sp.Radius)
			rl.DrawRing(s.vec(sp.Center), r-s.width/2, r+s.width/2, 0, 360, circleSegments, s.stroke)
			continue
		}
		for _, seg := range segments(sp) {
			rl.DrawLineEx(s.vec(seg[0]), s.vec(seg[1]), s.width, s.stroke)
		}
	}
}

// fillTriangles triangulates a polygon and orders each triangle the way
// rlgl expects, otherwise back-face culling drops it.
func fillTriangles(pts []geom.Point) []geom.Triangle {
	tris := triangles(pts)
	for i, t := range tris {
		if geom.SignedArea(t[:]) > 0 {
			tris[i][1], tris[i][2] = t[2], t[1]
		}
	}
	return tris
}

func segments(sp render.Subpath) [][2]geom.Point {
	n := len(sp.Points)
	if n < 2 {
		return nil
	}
	out := make([][2]geom.Point, 0, n)
	for i := 1; i < n; i++ {
		out = append(out, [2]geom.Point{sp.Points[i-1], sp.Points[i]})
	}
	if sp.Closed && n > 2 {
		out = append(out, [2]geom.Point{sp.Points[n-1], sp.Points[0]})
	}
	return out
}
