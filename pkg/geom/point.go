// pkg/geom/point.go
package geom

import "math"

// Point is a position in surface-local pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Near reports whether q lies strictly inside the axis-aligned box of half-size
// tol centred on p. Both the closing threshold and the vertex hit test use it.
func (p Point) Near(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) < tol && math.Abs(p.Y-q.Y) < tol
}

// Rect is an axis-aligned rectangle, Min inclusive, Max inclusive.
type Rect struct {
	Min, Max Point
}

// RectWH builds a rectangle from its origin and size.
func RectWH(x, y, w, h float64) Rect {
	return Rect{Min: Pt(x, y), Max: Pt(x+w, y+h)}
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Contains проверяет попадание точки в прямоугольник, включая границы.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Local converts p into coordinates relative to the rectangle origin.
func (r Rect) Local(p Point) Point {
	return Point{X: p.X - r.Min.X, Y: p.Y - r.Min.Y}
}

// SignedArea returns twice the signed area of the polygon (shoelace formula).
// In y-down screen coordinates a positive value means clockwise on screen.
func SignedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a
}
