package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-polygon-editor/pkg/geom"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
)

func tri() []geom.Point {
	return []geom.Point{geom.Pt(10, 10), geom.Pt(100, 10), geom.Pt(100, 100)}
}

func TestRenderPolygonFillsThenStrokesClosedPath(t *testing.T) {
	rec := NewRecorder()
	NewRenderer(5).Render(rec, Scene{
		Width: 200, Height: 200,
		Shapes: []Shape{{Points: tri(), Stroke: red, Fill: green, LineWidth: 3}},
	})

	assert.Equal(t, 1, rec.Clears)
	require.Len(t, rec.Ops, 2)
	fill, stroke := rec.Ops[0], rec.Ops[1]
	assert.True(t, fill.Fill)
	assert.Equal(t, green, fill.Color)
	assert.False(t, stroke.Fill)
	assert.Equal(t, red, stroke.Color)
	assert.Equal(t, 3.0, stroke.LineWidth)

	require.Len(t, fill.Path, 1)
	assert.True(t, fill.Path[0].Closed)
	assert.Equal(t, tri(), fill.Path[0].Points)
}

func TestRenderMarkersOnlyForEditTarget(t *testing.T) {
	rec := NewRecorder()
	NewRenderer(5).Render(rec, Scene{
		Shapes: []Shape{
			{Points: tri(), Stroke: red, Fill: green, LineWidth: 1},
			{Points: tri(), Stroke: red, Fill: green, LineWidth: 1, Markers: true},
		},
	})

	var markers []Subpath
	for _, op := range rec.Filled() {
		for _, sp := range op.Path {
			if sp.IsCircle {
				markers = append(markers, sp)
			}
		}
	}
	require.Len(t, markers, 3)
	for i, m := range markers {
		assert.Equal(t, tri()[i], m.Center)
		assert.Equal(t, 5.0, m.Radius)
	}
	assert.Equal(t, MarkerColor, rec.Filled()[len(rec.Filled())-1].Color)
}

func TestRenderDraftAndRubberBand(t *testing.T) {
	rec := NewRecorder()
	cursor := geom.Pt(150, 40)
	NewRenderer(5).Render(rec, Scene{
		Draft:       []geom.Point{geom.Pt(10, 10), geom.Pt(60, 10)},
		DraftStroke: red,
		DraftWidth:  2,
		Cursor:      &cursor,
	})

	assert.Empty(t, rec.Filled())
	strokes := rec.Stroked()
	require.Len(t, strokes, 2)
	assert.Equal(t, []geom.Point{geom.Pt(10, 10), geom.Pt(60, 10)}, strokes[0].Path[0].Points)
	assert.False(t, strokes[0].Path[0].Closed)
	assert.Equal(t, []geom.Point{geom.Pt(60, 10), cursor}, strokes[1].Path[0].Points)
	assert.Equal(t, red, strokes[1].Color)
	assert.Equal(t, 2.0, strokes[1].LineWidth)
}

func TestRenderCursorIgnoredWithoutDraft(t *testing.T) {
	rec := NewRecorder()
	cursor := geom.Pt(1, 1)
	NewRenderer(5).Render(rec, Scene{Cursor: &cursor})
	assert.Empty(t, rec.Ops)
}

func TestParseHexAndFormat(t *testing.T) {
	c, err := ParseHex("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, red, c)

	c, err = ParseHex("0f0")
	require.NoError(t, err)
	assert.Equal(t, green, c)

	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
	_, err = ParseHex("")
	assert.Error(t, err)

	assert.Equal(t, "#00FF00", Hex(green))
	assert.Equal(t, "#123ABC", Hex(color.RGBA{0x12, 0x3a, 0xbc, 0x80}))
}

func TestDarkenAndContrast(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 50, 0, 255}, DarkenColor(color.RGBA{200, 100, 0, 255}))
	dark, light := color.RGBA{A: 255}, color.RGBA{255, 255, 255, 255}
	assert.Equal(t, dark, Contrast(color.RGBA{250, 250, 250, 255}, dark, light))
	assert.Equal(t, light, Contrast(color.RGBA{10, 10, 10, 255}, dark, light))
}

func TestPathLineToWithoutMoveStartsSubpath(t *testing.T) {
	var p Path
	p.LineTo(1, 2)
	p.LineTo(3, 4)
	p.Close()
	p.LineTo(5, 6)
	require.Len(t, p.Subpaths, 2)
	assert.Equal(t, []geom.Point{geom.Pt(1, 2), geom.Pt(3, 4)}, p.Subpaths[0].Points)
	assert.True(t, p.Subpaths[0].Closed)
	assert.Equal(t, []geom.Point{geom.Pt(5, 6)}, p.Subpaths[1].Points)
}
