// internal/shape/store.go
package shape

import (
	"slices"

	"go-polygon-editor/internal/event"
	"go-polygon-editor/pkg/geom"
)

// Store holds the committed polygons and the in-progress draft. Every
// mutation is reported through the dispatcher so list displays can follow
// along without polling.
type Store struct {
	polygons []*Polygon
	draft    []geom.Point
	events   *event.Dispatcher
}

// NewStore creates an empty store. events may be nil.
func NewStore(events *event.Dispatcher) *Store {
	return &Store{events: events}
}

// NextID returns the id the next committed polygon will get:
// max existing id + 1, or 1 when the store is empty.
func (s *Store) NextID() ID {
	var top ID
	for _, p := range s.polygons {
		if p.ID > top {
			top = p.ID
		}
	}
	return top + 1
}

// AddPolygon appends a polygon built from a copy of points. It refuses
// shapes with fewer than MinPolygonPoints vertices.
func (s *Store) AddPolygon(points []geom.Point, style Style) (*Polygon, bool) {
	if len(points) < MinPolygonPoints {
		return nil, false
	}
	p := &Polygon{
		ID:     s.NextID(),
		Points: slices.Clone(points),
		Style:  style,
	}
	s.polygons = append(s.polygons, p)
	s.events.Dispatch(event.Event{Type: event.PolygonAdded, Data: p.ID})
	return p, true
}

// Polygon looks a polygon up by id.
func (s *Store) Polygon(id ID) (*Polygon, bool) {
	i := s.index(id)
	if i < 0 {
		return nil, false
	}
	return s.polygons[i], true
}

// Polygons returns the polygons in commit order. The slice is a copy; the
// polygons are shared.
func (s *Store) Polygons() []*Polygon {
	return slices.Clone(s.polygons)
}

// Len returns the number of committed polygons.
func (s *Store) Len() int { return len(s.polygons) }

// UpdateStyle applies change to the polygon with the given id.
func (s *Store) UpdateStyle(id ID, change StyleChange) bool {
	p, ok := s.Polygon(id)
	if !ok {
		return false
	}
	change.apply(&p.Style)
	s.events.Dispatch(event.Event{Type: event.PolygonChanged, Data: id})
	return true
}

// DeletePolygon removes the polygon with the given id. Other polygons keep
// their ids and points.
func (s *Store) DeletePolygon(id ID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.polygons = slices.Delete(s.polygons, i, i+1)
	s.events.Dispatch(event.Event{Type: event.PolygonRemoved, Data: id})
	return true
}

// MovePoint replaces vertex index of polygon id.
func (s *Store) MovePoint(id ID, index int, pt geom.Point) bool {
	p, ok := s.Polygon(id)
	if !ok || index < 0 || index >= len(p.Points) {
		return false
	}
	p.Points[index] = pt
	return true
}

// AppendDraft adds a point to the in-progress shape.
func (s *Store) AppendDraft(pt geom.Point) {
	s.draft = append(s.draft, pt)
}

// Draft returns a copy of the draft points.
func (s *Store) Draft() []geom.Point {
	return slices.Clone(s.draft)
}

// DraftLen returns the number of draft points.
func (s *Store) DraftLen() int { return len(s.draft) }

// CommitDraft turns the draft into a polygon and clears it. A draft that
// is too short stays untouched.
func (s *Store) CommitDraft(style Style) (*Polygon, bool) {
	p, ok := s.AddPolygon(s.draft, style)
	if !ok {
		return nil, false
	}
	s.ClearDraft()
	return p, true
}

// ClearDraft drops the draft points.
func (s *Store) ClearDraft() {
	s.draft = nil
}

// Clear удаляет все полигоны и черновик.
func (s *Store) Clear() {
	s.polygons = nil
	s.ClearDraft()
	s.events.Dispatch(event.Event{Type: event.Cleared})
}

func (s *Store) index(id ID) int {
	return slices.IndexFunc(s.polygons, func(p *Polygon) bool { return p.ID == id })
}
