package ebitensurf

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tessellation runs on the CPU, so these tests need no graphics context.
func newHeadless() *Surface {
	return &Surface{stroke: color.Black, fill: color.Black, width: 1}
}

func TestFillTessellatesClosedPath(t *testing.T) {
	s := newHeadless()
	s.BeginPath()
	s.MoveTo(10, 10)
	s.LineTo(100, 10)
	s.LineTo(100, 100)
	s.ClosePath()
	s.SetFillColor(color.RGBA{0, 255, 0, 255})

	vs, is := s.triangles(true, nil, nil)
	require.NotEmpty(t, vs)
	require.Zero(t, len(is)%3)
	for _, v := range vs {
		assert.Equal(t, float32(0), v.ColorR)
		assert.Equal(t, float32(1), v.ColorG)
		assert.Equal(t, float32(1), v.ColorA)
	}
}

func TestStrokeWidthWidensOutline(t *testing.T) {
	s := newHeadless()
	s.MoveTo(0, 50)
	s.LineTo(100, 50)
	s.SetStrokeColor(color.RGBA{255, 0, 0, 255})
	s.SetLineWidth(8)

	vs, is := s.triangles(false, nil, nil)
	require.NotEmpty(t, is)
	var minY, maxY float32 = 1e9, -1e9
	for _, v := range vs {
		minY = min(minY, v.DstY)
		maxY = max(maxY, v.DstY)
		assert.Equal(t, float32(1), v.ColorR)
	}
	assert.InDelta(t, 46, minY, 0.01)
	assert.InDelta(t, 54, maxY, 0.01)
}

func TestCircleSubpath(t *testing.T) {
	s := newHeadless()
	s.Circle(50, 50, 5)
	vs, _ := s.triangles(true, nil, nil)
	require.NotEmpty(t, vs)
	for _, v := range vs {
		assert.InDelta(t, 50, v.DstX, 5.01)
		assert.InDelta(t, 50, v.DstY, 5.01)
	}
}

func TestPathSurvivesFillUntilBeginPath(t *testing.T) {
	s := newHeadless()
	s.MoveTo(0, 0)
	s.LineTo(10, 0)
	s.LineTo(10, 10)
	s.ClosePath()
	first, _ := s.triangles(true, nil, nil)
	second, _ := s.triangles(false, nil, nil)
	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)

	s.BeginPath()
	_, is := s.triangles(true, nil, nil)
	assert.Empty(t, is)
}
