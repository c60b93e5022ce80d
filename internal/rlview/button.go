// internal/rlview/button.go
package rlview

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-polygon-editor/internal/config"
	"go-polygon-editor/internal/panel"
	"go-polygon-editor/pkg/geom"
	"go-polygon-editor/pkg/render"
)

// Button представляет собой кнопку панели в raylib.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
}

// NewButton создает кнопку из элемента панели.
func NewButton(c panel.Control, font rl.Font) *Button {
	text := render.Contrast(c.Color, config.TextDarkColor, config.TextLightColor)
	return &Button{
		Rect:       toRect(c.Rect),
		Text:       c.Label,
		TextColor:  toColor(text),
		BgColor:    toColor(c.Color),
		HoverColor: toColor(render.DarkenColor(c.Color)),
		Font:       font,
		FontSize:   config.FontSize + 3,
	}
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	if rl.CheckCollisionPointRec(mousePos, b.Rect) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 1, toColor(config.BorderColor))

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2

	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)
}

func toRect(r geom.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()))
}
