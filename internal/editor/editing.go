// internal/editor/editing.go
package editor

import (
	"github.com/sirupsen/logrus"

	"go-polygon-editor/internal/shape"
	"go-polygon-editor/pkg/geom"
)

const ModeEditing = "editing"

// editingMode drags vertices of a single target polygon. The drag index
// lives here so it cannot outlive the edit target.
type editingMode struct {
	e        *Editor
	target   shape.ID
	drag     int
	dragging bool
}

func (m *editingMode) Name() string { return ModeEditing }

func (m *editingMode) Enter() {
	m.dragging = false
}

func (m *editingMode) Exit() {
	m.dragging = false
}

// Press grabs the first vertex of the target within the hit radius.
func (m *editingMode) Press(p geom.Point) {
	poly, ok := m.e.store.Polygon(m.target)
	if !ok {
		return
	}
	for i, v := range poly.Points {
		if v.Near(p, m.e.opts.VertexHitRadius) {
			m.drag, m.dragging = i, true
			m.e.log.WithFields(logrus.Fields{"polygon_id": m.target, "vertex": i}).Debug("vertex grabbed")
			return
		}
	}
}

func (m *editingMode) Move(p geom.Point) {
	if !m.dragging {
		return
	}
	m.e.store.MovePoint(m.target, m.drag, p)
}

func (m *editingMode) Release() {
	if m.dragging {
		m.e.log.WithFields(logrus.Fields{"polygon_id": m.target, "vertex": m.drag}).Debug("vertex released")
	}
	m.dragging = false
}
