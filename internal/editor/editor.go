// internal/editor/editor.go
package editor

import (
	"image/color"
	"math"

	"github.com/sirupsen/logrus"

	"go-polygon-editor/internal/config"
	"go-polygon-editor/internal/event"
	"go-polygon-editor/internal/shape"
	"go-polygon-editor/pkg/geom"
	"go-polygon-editor/pkg/render"
)

// Button identifies a pointer button independently of the input backend.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Options tunes hit testing and initial defaults.
type Options struct {
	Width, Height   float64
	CloseThreshold  float64
	VertexHitRadius float64
	MarkerRadius    float64
	MaxLineWidth    float64
	Defaults        shape.Style
}

// OptionsFromSettings maps validated settings onto editor options.
func OptionsFromSettings(s config.Settings) Options {
	return Options{
		Width:           float64(s.CanvasWidth),
		Height:          float64(s.CanvasHeight),
		CloseThreshold:  s.CloseThreshold,
		VertexHitRadius: s.VertexHitRadius,
		MarkerRadius:    s.MarkerRadius,
		MaxLineWidth:    config.MaxLineWidth,
		Defaults: shape.Style{
			Stroke:    s.StrokeColor(),
			Fill:      s.FillColor(),
			LineWidth: s.LineWidth,
		},
	}
}

// Editor is the whole application state: the shape store, the current
// default style and the interaction mode. It is driven from a single frame
// loop and is not safe for concurrent use.
type Editor struct {
	store    *shape.Store
	events   *event.Dispatcher
	log      logrus.FieldLogger
	opts     Options
	bounds   geom.Rect
	renderer *render.Renderer

	current shape.Style
	modes   modeMachine
	drawing *drawingMode
	cursor  *geom.Point
}

// New creates an editor in drawing mode with an empty store. Store events
// and edit-target changes go to events, which may be nil.
func New(events *event.Dispatcher, opts Options, log logrus.FieldLogger) *Editor {
	e := &Editor{
		store:    shape.NewStore(events),
		events:   events,
		log:      log,
		opts:     opts,
		bounds:   geom.RectWH(0, 0, opts.Width, opts.Height),
		renderer: render.NewRenderer(opts.MarkerRadius),
		current:  opts.Defaults,
	}
	e.drawing = &drawingMode{e: e}
	e.modes.set(e.drawing)
	return e
}

// Store exposes the shape store for read access.
func (e *Editor) Store() *shape.Store { return e.store }

// Defaults returns the style new polygons are committed with.
func (e *Editor) Defaults() shape.Style { return e.current }

// Mode returns the active mode name.
func (e *Editor) Mode() string { return e.modes.current.Name() }

// Bounds returns the surface extent in local coordinates.
func (e *Editor) Bounds() geom.Rect { return e.bounds }

// EditTarget returns the polygon under edit, if any.
func (e *Editor) EditTarget() (shape.ID, bool) {
	if m, ok := e.modes.current.(*editingMode); ok {
		return m.target, true
	}
	return 0, false
}

// DragIndex returns the vertex being dragged, if any.
func (e *Editor) DragIndex() (int, bool) {
	if m, ok := e.modes.current.(*editingMode); ok && m.dragging {
		return m.drag, true
	}
	return 0, false
}

// Press handles a button press at surface-local (x, y). Presses outside
// the surface and non-primary buttons are ignored.
func (e *Editor) Press(x, y float64, b Button) {
	if b != ButtonPrimary {
		return
	}
	p := geom.Pt(x, y)
	if !e.bounds.Contains(p) {
		e.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("press outside surface ignored")
		return
	}
	e.modes.press(p)
}

// Move handles pointer movement. Positions outside the surface are ignored.
func (e *Editor) Move(x, y float64) {
	p := geom.Pt(x, y)
	if !e.bounds.Contains(p) {
		return
	}
	e.modes.move(p)
}

// Release handles a button release anywhere.
func (e *Editor) Release(b Button) {
	if b != ButtonPrimary {
		return
	}
	e.modes.release()
}

// ToggleEdit enters editing mode on id, leaves it when id is already the
// target, or switches to id when another polygon is under edit.
func (e *Editor) ToggleEdit(id shape.ID) {
	if target, ok := e.EditTarget(); ok && target == id {
		e.StopEditing()
		return
	}
	if _, ok := e.store.Polygon(id); !ok {
		e.log.WithField("polygon_id", id).Debug("edit toggle on unknown polygon ignored")
		return
	}
	e.modes.set(&editingMode{e: e, target: id})
	e.log.WithField("polygon_id", id).Info("editing polygon")
	e.events.Dispatch(event.Event{Type: event.EditTargetChanged, Data: id})
}

// StopEditing returns to drawing mode. It is a no-op in drawing mode.
func (e *Editor) StopEditing() {
	if _, ok := e.EditTarget(); !ok {
		return
	}
	e.modes.set(e.drawing)
	e.log.Info("editing finished")
	e.events.Dispatch(event.Event{Type: event.EditTargetChanged, Data: nil})
}

// SetStrokeColor updates the default stroke and, while editing, the target's.
func (e *Editor) SetStrokeColor(c color.RGBA) {
	e.applyStyle(shape.StrokeColor(c))
}

// SetFillColor updates the default fill and, while editing, the target's.
func (e *Editor) SetFillColor(c color.RGBA) {
	e.applyStyle(shape.FillColor(c))
}

// SetLineWidth updates the default width and, while editing, the target's.
// Non-positive or non-finite widths are ignored; larger than MaxLineWidth
// is clamped.
func (e *Editor) SetLineWidth(w float64) {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		e.log.WithField("line_width", w).Debug("line width ignored")
		return
	}
	if e.opts.MaxLineWidth > 0 && w > e.opts.MaxLineWidth {
		w = e.opts.MaxLineWidth
	}
	e.applyStyle(shape.LineWidth(w))
}

func (e *Editor) applyStyle(change shape.StyleChange) {
	e.current = e.current.With(change)
	if target, ok := e.EditTarget(); ok {
		e.store.UpdateStyle(target, change)
		e.log.WithFields(logrus.Fields{"polygon_id": target, "field": change.Field()}).Debug("polygon style changed")
	}
}

// DeletePolygon removes a polygon. Deleting the edit target leaves editing
// mode.
func (e *Editor) DeletePolygon(id shape.ID) {
	if !e.store.DeletePolygon(id) {
		e.log.WithField("polygon_id", id).Debug("delete of unknown polygon ignored")
		return
	}
	e.log.WithField("polygon_id", id).Info("polygon deleted")
	if target, ok := e.EditTarget(); ok && target == id {
		e.StopEditing()
	}
}

// Clear removes every polygon and the draft and leaves editing mode.
// Default styles are kept.
func (e *Editor) Clear() {
	e.StopEditing()
	e.store.Clear()
	e.cursor = nil
	e.log.Info("all polygons cleared")
}

// Scene snapshots the current state for the renderer.
func (e *Editor) Scene() render.Scene {
	target, editing := e.EditTarget()
	polys := e.store.Polygons()
	shapes := make([]render.Shape, 0, len(polys))
	for _, p := range polys {
		shapes = append(shapes, render.Shape{
			Points:    p.Points,
			Stroke:    p.Style.Stroke,
			Fill:      p.Style.Fill,
			LineWidth: p.Style.LineWidth,
			Markers:   editing && p.ID == target,
		})
	}
	sc := render.Scene{
		Width:       e.opts.Width,
		Height:      e.opts.Height,
		Shapes:      shapes,
		Draft:       e.store.Draft(),
		DraftStroke: e.current.Stroke,
		DraftWidth:  e.current.LineWidth,
	}
	if !editing && len(sc.Draft) > 0 && e.cursor != nil {
		c := *e.cursor
		sc.Cursor = &c
	}
	return sc
}

// Render draws the current frame onto s.
func (e *Editor) Render(s render.Surface) {
	e.renderer.Render(s, e.Scene())
}
