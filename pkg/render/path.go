// pkg/render/path.go
package render

import "go-polygon-editor/pkg/geom"

// Subpath is one MoveTo-started run of points, or a circle.
type Subpath struct {
	Points []geom.Point
	Closed bool

	IsCircle bool
	Center   geom.Point
	Radius   float64
}

// Path accumulates subpaths for surfaces whose backend path cannot be kept
// across Fill and Stroke (ebiten, raylib, the test recorder).
type Path struct {
	Subpaths []Subpath
}

func (p *Path) Reset() {
	p.Subpaths = p.Subpaths[:0]
}

func (p *Path) MoveTo(x, y float64) {
	p.Subpaths = append(p.Subpaths, Subpath{Points: []geom.Point{geom.Pt(x, y)}})
}

// LineTo extends the current subpath; without one it behaves like MoveTo,
// as a canvas does.
func (p *Path) LineTo(x, y float64) {
	n := len(p.Subpaths)
	if n == 0 || p.Subpaths[n-1].IsCircle || p.Subpaths[n-1].Closed {
		p.MoveTo(x, y)
		return
	}
	p.Subpaths[n-1].Points = append(p.Subpaths[n-1].Points, geom.Pt(x, y))
}

func (p *Path) Close() {
	n := len(p.Subpaths)
	if n == 0 || p.Subpaths[n-1].IsCircle {
		return
	}
	p.Subpaths[n-1].Closed = true
}

func (p *Path) Circle(x, y, r float64) {
	p.Subpaths = append(p.Subpaths, Subpath{IsCircle: true, Center: geom.Pt(x, y), Radius: r})
}

// Clone returns a deep copy.
func (p *Path) Clone() []Subpath {
	out := make([]Subpath, len(p.Subpaths))
	for i, sp := range p.Subpaths {
		out[i] = sp
		out[i].Points = append([]geom.Point(nil), sp.Points...)
	}
	return out
}
