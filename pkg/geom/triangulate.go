// pkg/geom/triangulate.go
package geom

// Triangle is three vertices in the winding of the source polygon.
type Triangle [3]Point

// Fan splits pts into triangles sharing the first vertex. It is exact for
// convex polygons and only an approximation otherwise.
func Fan(pts []Point) []Triangle {
	if len(pts) < 3 {
		return nil
	}
	out := make([]Triangle, 0, len(pts)-2)
	for i := 1; i+1 < len(pts); i++ {
		out = append(out, Triangle{pts[0], pts[i], pts[i+1]})
	}
	return out
}

// SelfIntersects reports whether two non-adjacent edges of the closed
// polygon cross or touch.
func SelfIntersects(pts []Point) bool {
	n := len(pts)
	if n < 4 {
		return false
	}
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		for j := i + 2; j < n; j++ {
			// Первое и последнее ребро смежны.
			if i == 0 && j == n-1 {
				continue
			}
			if segmentsTouch(a, b, pts[j], pts[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

// Dedupe drops consecutive repeated points, including a last point equal to
// the first.
func Dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func segmentsTouch(p1, p2, q1, q2 Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)
	if (d1 > 0 && d2 < 0 || d1 < 0 && d2 > 0) && (d3 > 0 && d4 < 0 || d3 < 0 && d4 > 0) {
		return true
	}
	return d1 == 0 && onSegment(q1, q2, p1) ||
		d2 == 0 && onSegment(q1, q2, p2) ||
		d3 == 0 && onSegment(p1, p2, q1) ||
		d4 == 0 && onSegment(p1, p2, q2)
}

// onSegment assumes p is collinear with a-b.
func onSegment(a, b, p Point) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}
