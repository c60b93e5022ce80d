// internal/ui/game.go
package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"go-polygon-editor/internal/config"
	"go-polygon-editor/internal/editor"
	"go-polygon-editor/internal/event"
	"go-polygon-editor/internal/panel"
	"go-polygon-editor/internal/snapshot"
	"go-polygon-editor/pkg/geom"
	"go-polygon-editor/pkg/render/ebitensurf"
)

// Command mutates the editor from outside the frame loop. Commands are
// queued and run at the start of the next Update.
type Command func(*editor.Editor)

const commandQueueSize = 64

// Game is the ebiten front end: canvas on the left, panel on the right.
type Game struct {
	settings config.Settings
	log      logrus.FieldLogger

	events *event.Dispatcher
	editor *editor.Editor
	panel  *panel.Panel
	canvas geom.Rect

	face     font.Face
	surface  *ebitensurf.Surface
	input    edges
	cursor   geom.Point
	commands chan Command
	status   string
	now      func() time.Time
}

// NewGame wires editor, panel and events from settings.
func NewGame(s config.Settings, log logrus.FieldLogger) (*Game, error) {
	face, err := loadFace(config.FontSize)
	if err != nil {
		return nil, err
	}
	events := event.NewDispatcher()
	ed := editor.New(events, editor.OptionsFromSettings(s), log)
	p := panel.New(panel.LayoutFromSettings(s), s.PaletteColors(), ed, log)
	p.Attach(events)

	g := &Game{
		settings: s,
		log:      log,
		events:   events,
		editor:   ed,
		panel:    p,
		canvas:   geom.RectWH(0, 0, float64(s.CanvasWidth), float64(s.CanvasHeight)),
		face:     face,
		input:    newEdges(),
		commands: make(chan Command, commandQueueSize),
		now:      time.Now,
	}
	g.initJS()
	return g, nil
}

func (g *Game) Editor() *editor.Editor { return g.editor }
func (g *Game) Panel() *panel.Panel    { return g.panel }

// Enqueue schedules cmd for the next frame. It is safe to call from any
// goroutine; when the queue is full the command is dropped.
func (g *Game) Enqueue(cmd Command) bool {
	select {
	case g.commands <- cmd:
		return true
	default:
		g.log.Warn("command queue full, dropping command")
		return false
	}
}

func (g *Game) drainCommands() {
	for {
		select {
		case cmd := <-g.commands:
			cmd(g.editor)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.drainCommands()
	g.handleKeys()
	g.handlePointer()
	g.reportStateJS()
	return nil
}

func (g *Game) handleKeys() {
	if g.input.keyPressed(ebiten.KeyC) {
		g.editor.Clear()
	}
	if g.input.keyPressed(ebiten.KeyEscape) {
		g.editor.StopEditing()
	}
	if g.input.keyPressed(ebiten.KeyP) {
		path, err := snapshot.Save(g.editor, g.settings, g.now(), g.log)
		if err != nil {
			g.log.WithError(err).Error("snapshot failed")
			g.status = "snapshot failed"
		} else {
			g.status = "saved " + path
		}
	}
}

func (g *Game) handlePointer() {
	x, y := cursorPosition()
	pt := geom.Pt(float64(x), float64(y))
	if pt != g.cursor {
		g.cursor = pt
		local := g.canvas.Local(pt)
		g.editor.Move(local.X, local.Y)
	}

	overPanel := g.panel.Bounds().Contains(pt)
	if _, dy := wheel(); dy != 0 && overPanel {
		g.panel.Scroll(-dy)
	}

	for _, mb := range mouseButtons {
		pressed, released := g.input.mouseEdge(mb.ebiten)
		if pressed {
			if overPanel {
				if mb.editor == editor.ButtonPrimary {
					g.panel.Click(pt.X, pt.Y)
				}
				continue
			}
			local := g.canvas.Local(pt)
			g.editor.Press(local.X, local.Y, mb.editor)
		}
		if released {
			g.editor.Release(mb.editor)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	sub := screen.SubImage(image.Rect(
		int(g.canvas.Min.X), int(g.canvas.Min.Y),
		int(g.canvas.Max.X), int(g.canvas.Max.Y),
	)).(*ebiten.Image)
	if g.surface == nil {
		g.surface = ebitensurf.New(sub, config.CanvasColor)
	} else {
		g.surface.Retarget(sub)
	}
	g.editor.Render(g.surface)

	g.drawPanel(screen)
	ebitenutil.DebugPrintAt(screen, g.statusLine(), 4, int(g.canvas.Max.Y)-16)
}

func (g *Game) statusLine() string {
	line := fmt.Sprintf("%s | polygons: %d | C clear, Esc done, P snapshot", g.editor.Mode(), g.editor.Store().Len())
	if g.status != "" {
		line += " | " + g.status
	}
	return line
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.ScreenSize()
}
