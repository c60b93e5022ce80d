// internal/ui/draw.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-polygon-editor/internal/config"
	"go-polygon-editor/internal/panel"
	"go-polygon-editor/pkg/render"
)

// loadFace parses the embedded Go Regular font.
func loadFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	b := g.panel.Bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), config.PanelColor, false)
	vector.StrokeLine(screen, float32(b.Min.X), 0, float32(b.Min.X), float32(b.Max.Y), 2, config.BorderColor, false)

	for _, c := range g.panel.Controls() {
		switch c.Kind {
		case panel.KindLabel:
			g.drawLabel(screen, c)
		case panel.KindStrokeSwatch, panel.KindFillSwatch:
			g.drawSwatch(screen, c)
		default:
			g.drawButton(screen, c)
		}
	}
}

func (g *Game) drawLabel(screen *ebiten.Image, c panel.Control) {
	clr := c.Color
	if c.Active {
		clr = config.ActiveColor
	}
	bounds := text.BoundString(g.face, c.Label)
	y := int(c.Rect.Min.Y+c.Rect.Dy()/2) + bounds.Dy()/2
	text.Draw(screen, c.Label, g.face, int(c.Rect.Min.X), y, clr)
}

func (g *Game) drawSwatch(screen *ebiten.Image, c panel.Control) {
	r := c.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c.Color, false)
	border, width := config.BorderColor, float32(1)
	if c.Active {
		border, width = config.ActiveColor, 3
	}
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, border, false)
}

// drawButton рисует кнопку панели, затемняя её под курсором.
func (g *Game) drawButton(screen *ebiten.Image, c panel.Control) {
	r := c.Rect
	bg := c.Color
	if r.Contains(g.cursor) {
		bg = render.DarkenColor(bg)
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, config.BorderColor, true)

	bounds := text.BoundString(g.face, c.Label)
	x := int(r.Min.X+r.Dx()/2) - bounds.Dx()/2
	y := int(r.Min.Y+r.Dy()/2) + bounds.Dy()/2
	text.Draw(screen, c.Label, g.face, x, y, textColor(bg))
}

func textColor(bg color.RGBA) color.RGBA {
	return render.Contrast(bg, config.TextDarkColor, config.TextLightColor)
}
