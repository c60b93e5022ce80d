// pkg/render/rlsurf/triangulate.go
package rlsurf

import (
	"fmt"

	"github.com/osuushi/triangulate/triangulate"

	"go-polygon-editor/pkg/geom"
)

// triangles splits a closed path into triangles for rl.DrawTriangle.
// Simple polygons go through the Seidel triangulator; self-intersecting
// ones, which it does not accept, are fanned from the first vertex.
func triangles(pts []geom.Point) []geom.Triangle {
	pts = geom.Dedupe(pts)
	if len(pts) < 3 || geom.SignedArea(pts) == 0 {
		return nil
	}
	if len(pts) == 3 || geom.SelfIntersects(pts) {
		return geom.Fan(pts)
	}
	tris, err := triangulateSimple(pts)
	if err != nil {
		return geom.Fan(pts)
	}
	return tris
}

// triangulateSimple expects a simple polygon. The library wants
// counterclockwise input in its own y-up frame, i.e. a positive shoelace sum.
func triangulateSimple(pts []geom.Point) (out []geom.Triangle, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("triangulate: %v", r)
		}
	}()

	poly := triangulate.Polygon{Points: make([]*triangulate.Point, len(pts))}
	for i, p := range pts {
		poly.Points[i] = &triangulate.Point{X: p.X, Y: p.Y}
	}
	if geom.SignedArea(pts) < 0 {
		poly.Reverse()
	}

	res, err := triangulate.PolygonList{poly}.Triangulate()
	if err != nil {
		return nil, fmt.Errorf("triangulate: %w", err)
	}
	out = make([]geom.Triangle, 0, len(res))
	for _, t := range res {
		out = append(out, geom.Triangle{
			geom.Pt(t.A.X, t.A.Y),
			geom.Pt(t.B.X, t.B.Y),
			geom.Pt(t.C.X, t.C.Y),
		})
	}
	return out, nil
}
