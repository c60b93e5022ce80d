// internal/panel/panel.go
package panel

import (
	"image/color"
	"slices"
	"strconv"

	"github.com/sirupsen/logrus"

	"go-polygon-editor/internal/event"
	"go-polygon-editor/internal/shape"
	"go-polygon-editor/pkg/geom"
	"go-polygon-editor/pkg/render"
)

// Kind is the type of a panel element.
type Kind int

const (
	KindLabel Kind = iota
	KindStrokeSwatch
	KindFillSwatch
	KindWidthDown
	KindWidthUp
	KindClear
	KindEdit
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindStrokeSwatch:
		return "stroke_swatch"
	case KindFillSwatch:
		return "fill_swatch"
	case KindWidthDown:
		return "width_down"
	case KindWidthUp:
		return "width_up"
	case KindClear:
		return "clear"
	case KindEdit:
		return "edit"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Control is one laid-out element of the panel in screen coordinates.
type Control struct {
	Kind   Kind
	Rect   geom.Rect
	Label  string
	Color  color.RGBA
	ID     shape.ID
	Active bool
}

// Clickable reports whether the control reacts to presses.
func (c Control) Clickable() bool { return c.Kind != KindLabel }

// Actions is the part of the editor the panel drives.
type Actions interface {
	ToggleEdit(id shape.ID)
	DeletePolygon(id shape.ID)
	SetStrokeColor(c color.RGBA)
	SetFillColor(c color.RGBA)
	SetLineWidth(w float64)
	Clear()
	Defaults() shape.Style
}

// Entry is one row of the polygon list.
type Entry struct {
	ID    shape.ID
	Label string
}

// Layout holds the panel metrics.
type Layout struct {
	Origin     geom.Point
	Width      float64
	Height     float64
	Padding    float64
	RowHeight  float64
	Swatch     float64
	ButtonW    float64
	WidthStep  float64
	LabelColor color.RGBA
	Button     color.RGBA
	Active     color.RGBA
	Danger     color.RGBA
}

// Panel is the list display plus style controls. It follows the store via
// events and never reads polygons directly.
type Panel struct {
	layout  Layout
	palette []color.RGBA
	actions Actions
	log     logrus.FieldLogger

	entries []Entry
	editing *shape.ID
	scroll  float64
}

func New(layout Layout, palette []color.RGBA, actions Actions, log logrus.FieldLogger) *Panel {
	if layout.WidthStep <= 0 {
		layout.WidthStep = 1
	}
	return &Panel{
		layout:  layout,
		palette: palette,
		actions: actions,
		log:     log,
	}
}

// Attach subscribes the panel to every event it mirrors.
func (p *Panel) Attach(d *event.Dispatcher) {
	d.SubscribeAll(p,
		event.PolygonAdded,
		event.PolygonRemoved,
		event.Cleared,
		event.EditTargetChanged,
	)
}

// OnEvent implements event.Listener.
func (p *Panel) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.PolygonAdded:
		if id, ok := ev.Data.(shape.ID); ok {
			p.entries = append(p.entries, Entry{ID: id, Label: id.Label()})
			// Новая запись всегда видна.
			p.scroll = p.maxScroll()
		}
	case event.PolygonRemoved:
		if id, ok := ev.Data.(shape.ID); ok {
			p.entries = slices.DeleteFunc(p.entries, func(e Entry) bool { return e.ID == id })
			if p.editing != nil && *p.editing == id {
				p.editing = nil
			}
			p.scroll = p.clampScroll(p.scroll)
		}
	case event.Cleared:
		p.entries = nil
		p.editing = nil
		p.scroll = 0
	case event.EditTargetChanged:
		if id, ok := ev.Data.(shape.ID); ok {
			p.editing = &id
		} else {
			p.editing = nil
		}
	}
}

// Entries returns the list rows in display order.
func (p *Panel) Entries() []Entry {
	return slices.Clone(p.entries)
}

// Bounds is the screen area the panel occupies.
func (p *Panel) Bounds() geom.Rect {
	return geom.RectWH(p.layout.Origin.X, p.layout.Origin.Y, p.layout.Width, p.layout.Height)
}

// Scroll moves the polygon list by rows; positive values reveal later
// entries. The offset is clamped so the list never scrolls past its ends.
func (p *Panel) Scroll(rows float64) {
	p.scroll = p.clampScroll(p.scroll + rows*p.layout.RowHeight)
}

// ScrollOffset is the list offset in pixels.
func (p *Panel) ScrollOffset() float64 { return p.scroll }

func (p *Panel) clampScroll(v float64) float64 {
	return max(0, min(v, p.maxScroll()))
}

// maxScroll is how far the rows overhang the visible list area.
func (p *Panel) maxScroll() float64 {
	_, top := p.header()
	view := p.listBottom() - top
	return max(0, float64(len(p.entries))*p.layout.RowHeight-view)
}

func (p *Panel) listBottom() float64 {
	return p.layout.Origin.Y + p.layout.Height - p.layout.Padding
}

// Controls lays out the panel for the current state. Only rows that fit
// entirely inside the list area are returned.
func (p *Panel) Controls() []Control {
	out, top := p.header()
	return append(out, p.rows(top)...)
}

// header lays out everything above the polygon list and returns the y
// where the list starts.
func (p *Panel) header() ([]Control, float64) {
	l := p.layout
	def := p.actions.Defaults()
	x0 := l.Origin.X + l.Padding
	y := l.Origin.Y + l.Padding
	var out []Control

	label := func(text string) {
		out = append(out, Control{Kind: KindLabel, Rect: geom.RectWH(x0, y, l.Width-2*l.Padding, l.RowHeight), Label: text, Color: l.LabelColor})
		y += l.RowHeight
	}
	swatches := func(kind Kind, current color.RGBA) {
		x := x0
		for _, c := range p.palette {
			if x+l.Swatch > l.Origin.X+l.Width-l.Padding {
				x = x0
				y += l.Swatch + 4
			}
			out = append(out, Control{Kind: kind, Rect: geom.RectWH(x, y, l.Swatch, l.Swatch), Color: c, Active: c == current})
			x += l.Swatch + 4
		}
		y += l.Swatch + 8
	}

	label("Stroke")
	swatches(KindStrokeSwatch, def.Stroke)
	label("Fill")
	swatches(KindFillSwatch, def.Fill)

	bh := l.RowHeight - 4
	out = append(out,
		Control{Kind: KindWidthDown, Rect: geom.RectWH(x0, y, bh, bh), Label: "-", Color: l.Button},
		Control{Kind: KindLabel, Rect: geom.RectWH(x0+bh+6, y, l.ButtonW, bh), Label: "Width " + strconv.FormatFloat(def.LineWidth, 'f', -1, 64), Color: l.LabelColor},
		Control{Kind: KindWidthUp, Rect: geom.RectWH(x0+bh+12+l.ButtonW, y, bh, bh), Label: "+", Color: l.Button},
	)
	y += l.RowHeight
	out = append(out, Control{Kind: KindClear, Rect: geom.RectWH(x0, y, l.ButtonW, bh), Label: "Clear", Color: l.Danger})
	y += l.RowHeight + l.Padding

	title := "Polygons"
	if n := len(p.entries); n > 0 {
		title += " (" + strconv.Itoa(n) + ")"
	}
	label(title)
	return out, y
}

func (p *Panel) rows(top float64) []Control {
	l := p.layout
	x0 := l.Origin.X + l.Padding
	bh := l.RowHeight - 4
	delX := l.Origin.X + l.Width - l.Padding - l.ButtonW
	editX := delX - 6 - l.ButtonW
	bottom := p.listBottom()

	var out []Control
	for i, e := range p.entries {
		y := top + float64(i)*l.RowHeight - p.scroll
		if y < top || y+bh > bottom {
			continue
		}
		editing := p.editing != nil && *p.editing == e.ID
		editLabel, editColor := "Edit", l.Button
		if editing {
			editLabel, editColor = "Done", l.Active
		}
		out = append(out,
			Control{Kind: KindLabel, Rect: geom.RectWH(x0, y, editX-x0, bh), Label: e.Label, Color: l.LabelColor, ID: e.ID, Active: editing},
			Control{Kind: KindEdit, Rect: geom.RectWH(editX, y, l.ButtonW, bh), Label: editLabel, Color: editColor, ID: e.ID, Active: editing},
			Control{Kind: KindDelete, Rect: geom.RectWH(delX, y, l.ButtonW, bh), Label: "Delete", Color: l.Danger, ID: e.ID},
		)
	}
	return out
}

// Click performs the action under (x, y) and reports whether a control was hit.
func (p *Panel) Click(x, y float64) bool {
	pt := geom.Pt(x, y)
	for _, c := range p.Controls() {
		if !c.Clickable() || !c.Rect.Contains(pt) {
			continue
		}
		p.perform(c)
		return true
	}
	return false
}

func (p *Panel) perform(c Control) {
	fields := logrus.Fields{"control": c.Kind.String()}
	switch c.Kind {
	case KindStrokeSwatch, KindFillSwatch:
		fields["color"] = render.Hex(c.Color)
	case KindEdit, KindDelete:
		fields["polygon_id"] = int(c.ID)
	}
	p.log.WithFields(fields).Debug("panel control pressed")
	switch c.Kind {
	case KindStrokeSwatch:
		p.actions.SetStrokeColor(c.Color)
	case KindFillSwatch:
		p.actions.SetFillColor(c.Color)
	case KindWidthDown:
		if w := p.actions.Defaults().LineWidth - p.layout.WidthStep; w > 0 {
			p.actions.SetLineWidth(w)
		}
	case KindWidthUp:
		p.actions.SetLineWidth(p.actions.Defaults().LineWidth + p.layout.WidthStep)
	case KindClear:
		p.actions.Clear()
	case KindEdit:
		p.actions.ToggleEdit(c.ID)
	case KindDelete:
		p.actions.DeletePolygon(c.ID)
	}
}
