package shape

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-polygon-editor/internal/event"
	"go-polygon-editor/pkg/geom"
)

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.got = append(r.got, e) }

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
)

func triangle(offset float64) []geom.Point {
	return []geom.Point{
		geom.Pt(10+offset, 10), geom.Pt(100+offset, 10), geom.Pt(100+offset, 100),
	}
}

func defaultStyle() Style {
	return Style{Stroke: red, Fill: green, LineWidth: 1}
}

func TestNextIDStartsAtOneAndFollowsMax(t *testing.T) {
	s := NewStore(nil)
	assert.Equal(t, ID(1), s.NextID())

	p1, ok := s.AddPolygon(triangle(0), defaultStyle())
	require.True(t, ok)
	p2, _ := s.AddPolygon(triangle(5), defaultStyle())
	p3, _ := s.AddPolygon(triangle(10), defaultStyle())
	assert.Equal(t, []ID{1, 2, 3}, []ID{p1.ID, p2.ID, p3.ID})

	require.True(t, s.DeletePolygon(2))
	assert.Equal(t, ID(4), s.NextID(), "a gap below the max does not get reused")

	require.True(t, s.DeletePolygon(3))
	assert.Equal(t, ID(2), s.NextID(), "next id is max existing id + 1")
}

func TestAddPolygonRejectsShortSequences(t *testing.T) {
	s := NewStore(nil)
	_, ok := s.AddPolygon([]geom.Point{geom.Pt(1, 1), geom.Pt(2, 2)}, defaultStyle())
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestAddPolygonCopiesPoints(t *testing.T) {
	s := NewStore(nil)
	pts := triangle(0)
	p, _ := s.AddPolygon(pts, defaultStyle())
	pts[0] = geom.Pt(-1, -1)
	assert.Equal(t, geom.Pt(10, 10), p.Points[0])
}

func TestCommitDraft(t *testing.T) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(event.PolygonAdded, rec)
	s := NewStore(d)

	s.AppendDraft(geom.Pt(10, 10))
	s.AppendDraft(geom.Pt(100, 10))
	_, ok := s.CommitDraft(defaultStyle())
	assert.False(t, ok)
	assert.Equal(t, 2, s.DraftLen(), "short draft is kept")

	s.AppendDraft(geom.Pt(100, 100))
	p, ok := s.CommitDraft(defaultStyle())
	require.True(t, ok)
	assert.Equal(t, ID(1), p.ID)
	assert.Equal(t, triangle(0), p.Points)
	assert.Empty(t, s.Draft())
	assert.Equal(t, []event.Event{{Type: event.PolygonAdded, Data: ID(1)}}, rec.got)
}

func TestUpdateStyleTouchesOneFieldOfOnePolygon(t *testing.T) {
	s := NewStore(nil)
	a, _ := s.AddPolygon(triangle(0), defaultStyle())
	b, _ := s.AddPolygon(triangle(5), defaultStyle())

	require.True(t, s.UpdateStyle(a.ID, FillColor(blue)))
	assert.Equal(t, Style{Stroke: red, Fill: blue, LineWidth: 1}, a.Style)
	assert.Equal(t, defaultStyle(), b.Style)

	require.True(t, s.UpdateStyle(b.ID, LineWidth(4)))
	require.True(t, s.UpdateStyle(b.ID, StrokeColor(blue)))
	assert.Equal(t, Style{Stroke: blue, Fill: green, LineWidth: 4}, b.Style)

	assert.False(t, s.UpdateStyle(42, FillColor(red)), "absent id is a no-op")
}

func TestStyleWith(t *testing.T) {
	st := defaultStyle().With(LineWidth(3))
	assert.Equal(t, 3.0, st.LineWidth)
	assert.Equal(t, 1.0, defaultStyle().LineWidth)
	assert.Equal(t, "line_width", LineWidth(3).Field())
	assert.Equal(t, "fill", FillColor(red).Field())
	assert.Equal(t, "stroke", StrokeColor(red).Field())
}

func TestDeletePolygonLeavesOthersIntact(t *testing.T) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(event.PolygonRemoved, rec)
	s := NewStore(d)
	s.AddPolygon(triangle(0), defaultStyle())
	s.AddPolygon(triangle(5), defaultStyle())
	s.AddPolygon(triangle(10), defaultStyle())

	require.True(t, s.DeletePolygon(2))
	assert.False(t, s.DeletePolygon(2))

	got := s.Polygons()
	require.Len(t, got, 2)
	assert.Equal(t, ID(1), got[0].ID)
	assert.Equal(t, triangle(0), got[0].Points)
	assert.Equal(t, ID(3), got[1].ID)
	assert.Equal(t, triangle(10), got[1].Points)
	assert.Equal(t, []event.Event{{Type: event.PolygonRemoved, Data: ID(2)}}, rec.got)
}

func TestMovePoint(t *testing.T) {
	s := NewStore(nil)
	p, _ := s.AddPolygon(triangle(0), defaultStyle())

	require.True(t, s.MovePoint(p.ID, 1, geom.Pt(50, 60)))
	assert.Equal(t, []geom.Point{geom.Pt(10, 10), geom.Pt(50, 60), geom.Pt(100, 100)}, p.Points)

	assert.False(t, s.MovePoint(p.ID, 3, geom.Pt(0, 0)))
	assert.False(t, s.MovePoint(p.ID, -1, geom.Pt(0, 0)))
	assert.False(t, s.MovePoint(9, 0, geom.Pt(0, 0)))
}

func TestClear(t *testing.T) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(event.Cleared, rec)
	s := NewStore(d)
	s.AddPolygon(triangle(0), defaultStyle())
	s.AppendDraft(geom.Pt(1, 1))

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Zero(t, s.DraftLen())
	assert.Equal(t, ID(1), s.NextID())
	assert.Len(t, rec.got, 1)
}

func TestPolygonLabel(t *testing.T) {
	p := &Polygon{ID: 12}
	assert.Equal(t, "Polygon 12", p.Label())
}
