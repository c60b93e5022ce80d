// internal/shape/polygon.go
package shape

import (
	"strconv"

	"go-polygon-editor/pkg/geom"
)

// ID identifies a polygon. IDs are plain integers and are never
// compared through their string form.
type ID int

func (id ID) String() string { return strconv.Itoa(int(id)) }

// Label is the text shown for the polygon in the list display.
func (id ID) Label() string { return "Polygon " + id.String() }

// MinPolygonPoints is the smallest vertex count a committed polygon may have.
const MinPolygonPoints = 3

// Polygon is a committed closed shape. The Store owns every Polygon; callers
// may read fields but must go through the Store to mutate them.
type Polygon struct {
	ID     ID
	Points []geom.Point
	Style  Style
}

func (p *Polygon) Label() string {
	return p.ID.Label()
}
