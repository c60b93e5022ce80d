// internal/editor/drawing.go
package editor

import (
	"github.com/sirupsen/logrus"

	"go-polygon-editor/pkg/geom"
)

const ModeDrawing = "drawing"

// drawingMode places draft points and closes them into polygons.
type drawingMode struct {
	e *Editor
}

func (m *drawingMode) Name() string { return ModeDrawing }

func (m *drawingMode) Enter() {}

func (m *drawingMode) Exit() {
	m.e.cursor = nil
}

// Press appends p to the draft, or commits the draft when it already has
// more than two points and p is within the closing threshold of the first.
func (m *drawingMode) Press(p geom.Point) {
	store := m.e.store
	draft := store.Draft()
	if len(draft) > 2 && draft[0].Near(p, m.e.opts.CloseThreshold) {
		poly, ok := store.CommitDraft(m.e.current)
		if !ok {
			return
		}
		m.e.cursor = nil
		m.e.log.WithFields(logrus.Fields{
			"polygon_id": poly.ID,
			"points":     len(poly.Points),
		}).Info("polygon committed")
		return
	}
	store.AppendDraft(p)
	m.e.cursor = &p
	m.e.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y, "draft": store.DraftLen()}).Debug("draft point added")
}

// Move tracks the pointer for the rubber-band segment.
func (m *drawingMode) Move(p geom.Point) {
	if m.e.store.DraftLen() == 0 {
		m.e.cursor = nil
		return
	}
	m.e.cursor = &p
}

func (m *drawingMode) Release() {}
