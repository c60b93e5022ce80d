//go:build js

// internal/ui/js_bridge_js.go
package ui

import (
	"syscall/js"

	"go-polygon-editor/internal/editor"
	"go-polygon-editor/pkg/render"
)

// initJS exposes window.polyedit so page controls can drive the editor.
// Callbacks run outside the frame loop and only enqueue commands.
func (g *Game) initJS() {
	api := js.Global().Get("Object").New()

	setColor := func(apply func(*editor.Editor, string)) js.Func {
		return js.FuncOf(func(_ js.Value, args []js.Value) any {
			if len(args) == 0 {
				return "missing color"
			}
			hex := args[0].String()
			if _, err := render.ParseHex(hex); err != nil {
				g.log.WithError(err).Warn("ignoring color from page")
				return err.Error()
			}
			g.Enqueue(func(e *editor.Editor) { apply(e, hex) })
			return nil
		})
	}

	api.Set("setStrokeColor", setColor(func(e *editor.Editor, hex string) {
		c, _ := render.ParseHex(hex)
		e.SetStrokeColor(c)
	}))
	api.Set("setFillColor", setColor(func(e *editor.Editor, hex string) {
		c, _ := render.ParseHex(hex)
		e.SetFillColor(c)
	}))
	api.Set("setLineWidth", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 || args[0].Type() != js.TypeNumber {
			return "line width must be a number"
		}
		w := args[0].Float()
		g.Enqueue(func(e *editor.Editor) { e.SetLineWidth(w) })
		return nil
	}))
	api.Set("clear", js.FuncOf(func(js.Value, []js.Value) any {
		g.Enqueue(func(e *editor.Editor) { e.Clear() })
		return nil
	}))
	api.Set("stopEditing", js.FuncOf(func(js.Value, []js.Value) any {
		g.Enqueue(func(e *editor.Editor) { e.StopEditing() })
		return nil
	}))
	js.Global().Set("polyedit", api)
}

// reportStateJS publishes the mode, polygon count and current style for
// page scripts, which mirror it into the native inputs.
func (g *Game) reportStateJS() {
	def := g.editor.Defaults()
	js.Global().Set("__polyedit", js.ValueOf(map[string]any{
		"mode":      g.editor.Mode(),
		"polygons":  g.editor.Store().Len(),
		"stroke":    render.Hex(def.Stroke),
		"fill":      render.Hex(def.Fill),
		"lineWidth": def.LineWidth,
	}))
}
