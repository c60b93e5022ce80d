// internal/rlview/view.go
package rlview

import (
	"fmt"
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"go-polygon-editor/internal/config"
	"go-polygon-editor/internal/editor"
	"go-polygon-editor/internal/event"
	"go-polygon-editor/internal/panel"
	"go-polygon-editor/internal/snapshot"
	"go-polygon-editor/pkg/geom"
	"go-polygon-editor/pkg/render/rlsurf"
)

// mouseButtons maps raylib buttons onto editor buttons.
var mouseButtons = []struct {
	rl     rl.MouseButton
	editor editor.Button
}{
	{rl.MouseButtonLeft, editor.ButtonPrimary},
	{rl.MouseButtonRight, editor.ButtonSecondary},
	{rl.MouseButtonMiddle, editor.ButtonMiddle},
}

// View is the native desktop front end built on raylib.
type View struct {
	settings config.Settings
	log      logrus.FieldLogger

	editor  *editor.Editor
	panel   *panel.Panel
	surface *rlsurf.Surface
	canvas  geom.Rect
	font    rl.Font
	cursor  geom.Point
	status  string
}

func New(s config.Settings, log logrus.FieldLogger) *View {
	events := event.NewDispatcher()
	ed := editor.New(events, editor.OptionsFromSettings(s), log)
	p := panel.New(panel.LayoutFromSettings(s), s.PaletteColors(), ed, log)
	p.Attach(events)
	return &View{
		settings: s,
		log:      log,
		editor:   ed,
		panel:    p,
		surface:  rlsurf.New(geom.Pt(0, 0), config.CanvasColor),
		canvas:   geom.RectWH(0, 0, float64(s.CanvasWidth), float64(s.CanvasHeight)),
	}
}

// Run opens the window and blocks until it is closed.
func (v *View) Run() {
	rl.SetTraceLogLevel(rl.LogWarning)
	w, h := v.settings.ScreenSize()
	rl.InitWindow(int32(w), int32(h), "Polygon Editor")
	defer rl.CloseWindow()
	// Escape завершает редактирование, а не закрывает окно.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)
	v.font = rl.GetFontDefault()

	for !rl.WindowShouldClose() {
		v.update()

		rl.BeginDrawing()
		rl.ClearBackground(toColor(config.BackgroundColor))
		v.editor.Render(v.surface)
		v.drawPanel()
		rl.DrawText(v.statusLine(), 4, int32(v.canvas.Max.Y)-16, 10, rl.DarkGray)
		rl.EndDrawing()
	}
}

func (v *View) update() {
	if rl.IsKeyPressed(rl.KeyC) {
		v.editor.Clear()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		v.editor.StopEditing()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		path, err := snapshot.Save(v.editor, v.settings, time.Now(), v.log)
		if err != nil {
			v.log.WithError(err).Error("snapshot failed")
			v.status = "snapshot failed"
		} else {
			v.status = "saved " + path
		}
	}

	mp := rl.GetMousePosition()
	pt := geom.Pt(float64(mp.X), float64(mp.Y))
	if pt != v.cursor {
		v.cursor = pt
		local := v.canvas.Local(pt)
		v.editor.Move(local.X, local.Y)
	}

	if dy := rl.GetMouseWheelMove(); dy != 0 && v.panel.Bounds().Contains(pt) {
		v.panel.Scroll(-float64(dy))
	}

	for _, mb := range mouseButtons {
		if rl.IsMouseButtonPressed(mb.rl) {
			if v.panel.Bounds().Contains(pt) {
				if mb.editor == editor.ButtonPrimary {
					v.panel.Click(pt.X, pt.Y)
				}
				continue
			}
			local := v.canvas.Local(pt)
			v.editor.Press(local.X, local.Y, mb.editor)
		}
		if rl.IsMouseButtonReleased(mb.rl) {
			v.editor.Release(mb.editor)
		}
	}
}

func (v *View) drawPanel() {
	b := v.panel.Bounds()
	rl.DrawRectangleRec(toRect(b), toColor(config.PanelColor))
	rl.DrawLineEx(rl.NewVector2(float32(b.Min.X), 0), rl.NewVector2(float32(b.Min.X), float32(b.Max.Y)), 2, toColor(config.BorderColor))

	mouse := rl.GetMousePosition()
	for _, c := range v.panel.Controls() {
		switch c.Kind {
		case panel.KindLabel:
			clr := c.Color
			if c.Active {
				clr = config.ActiveColor
			}
			size := rl.MeasureTextEx(v.font, c.Label, config.FontSize+3, 1)
			pos := rl.NewVector2(float32(c.Rect.Min.X), float32(c.Rect.Min.Y+c.Rect.Dy()/2)-size.Y/2)
			rl.DrawTextEx(v.font, c.Label, pos, config.FontSize+3, 1, toColor(clr))
		case panel.KindStrokeSwatch, panel.KindFillSwatch:
			r := toRect(c.Rect)
			rl.DrawRectangleRec(r, toColor(c.Color))
			if c.Active {
				rl.DrawRectangleLinesEx(r, 3, toColor(config.ActiveColor))
			} else {
				rl.DrawRectangleLinesEx(r, 1, toColor(config.BorderColor))
			}
		default:
			NewButton(c, v.font).Draw(mouse)
		}
	}
}

func (v *View) statusLine() string {
	line := fmt.Sprintf("%s | polygons: %d | C clear, Esc done, P snapshot", v.editor.Mode(), v.editor.Store().Len())
	if v.status != "" {
		line += " | " + v.status
	}
	return line
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
