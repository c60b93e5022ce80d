// pkg/render/ebitensurf/surface.go
package ebitensurf

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-polygon-editor/pkg/render"
)

// Surface draws onto an ebiten image, typically a sub-image of the screen.
// Coordinates are relative to the image bounds.
type Surface struct {
	target *ebiten.Image
	bg     color.Color
	white  *ebiten.Image

	path   render.Path
	stroke color.Color
	fill   color.Color
	width  float64

	vs []ebiten.Vertex
	is []uint16
}

var _ render.Surface = (*Surface)(nil)

func New(target *ebiten.Image, bg color.Color) *Surface {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Surface{
		target: target,
		bg:     bg,
		white:  white,
		stroke: color.Black,
		fill:   color.Black,
		width:  1,
	}
}

// Retarget points the surface at a new image, e.g. each frame's screen.
func (s *Surface) Retarget(target *ebiten.Image) {
	s.target = target
}

func (s *Surface) origin() (float32, float32) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return float32(b.Min.X), float32(b.Min.Y)
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	ox, oy := s.origin()
	vector.DrawFilledRect(s.target, ox+float32(x), oy+float32(y), float32(w), float32(h), s.bg, false)
}

func (s *Surface) BeginPath()             { s.path.Reset() }
func (s *Surface) MoveTo(x, y float64)    { s.path.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64)    { s.path.LineTo(x, y) }
func (s *Surface) ClosePath()             { s.path.Close() }
func (s *Surface) Circle(x, y, r float64) { s.path.Circle(x, y, r) }

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *Surface) SetFillColor(c color.Color)   { s.fill = c }
func (s *Surface) SetLineWidth(w float64)       { s.width = w }

func (s *Surface) Fill() {
	s.vs, s.is = s.triangles(true, s.vs[:0], s.is[:0])
	s.draw()
}

func (s *Surface) Stroke() {
	s.vs, s.is = s.triangles(false, s.vs[:0], s.is[:0])
	s.draw()
}

func (s *Surface) draw() {
	if len(s.is) == 0 {
		return
	}
	s.target.DrawTriangles(s.vs, s.is, s.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

// triangles tessellates the current path and paints the vertices with the
// fill or stroke color.
func (s *Surface) triangles(fill bool, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	p := s.vectorPath()
	clr := s.stroke
	if fill {
		clr = s.fill
		vs, is = p.AppendVerticesAndIndicesForFilling(vs, is)
	} else {
		vs, is = p.AppendVerticesAndIndicesForStroke(vs, is, &vector.StrokeOptions{
			Width:      float32(s.width),
			LineJoin:   vector.LineJoinMiter,
			MiterLimit: 10,
		})
	}

	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	return vs, is
}

func (s *Surface) vectorPath() *vector.Path {
	ox, oy := s.origin()
	var p vector.Path
	for _, sp := range s.path.Subpaths {
		if sp.IsCircle {
			cx, cy := ox+float32(sp.Center.X), oy+float32(sp.Center.Y)
			rad := float32(sp.Radius)
			p.MoveTo(cx+rad, cy)
			p.Arc(cx, cy, rad, 0, 2*math.Pi, vector.Clockwise)
			p.Close()
			continue
		}
		for i, pt := range sp.Points {
			x, y := ox+float32(pt.X), oy+float32(pt.Y)
			if i == 0 {
				p.MoveTo(x, y)
			} else {
				p.LineTo(x, y)
			}
		}
		if sp.Closed {
			p.Close()
		}
	}
	return &p
}
