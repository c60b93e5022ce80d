// internal/config/config.go
package config

import "image/color"

const (
	CanvasWidth  = 800
	CanvasHeight = 600
	PanelWidth   = 260
	ScreenWidth  = CanvasWidth + PanelWidth
	ScreenHeight = CanvasHeight

	CloseThreshold  = 10.0 // px по каждой оси до первой точки черновика
	VertexHitRadius = 5.0  // px по каждой оси до вершины при захвате
	MarkerRadius    = 5.0

	DefaultStroke    = "#FF0000"
	DefaultFill      = "#00FF00"
	DefaultLineWidth = 1.0
	MaxLineWidth     = 50.0

	FontSize      = 13
	PanelPadding  = 10
	PanelRowH     = 26
	SwatchSize    = 20
	ButtonWidth   = 56
	DefaultLogLvl = "info"
	SnapshotDir   = "."
)

var (
	BackgroundColor = color.RGBA{30, 30, 40, 255}
	CanvasColor     = color.RGBA{255, 255, 255, 255}
	PanelColor      = color.RGBA{45, 45, 60, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 255}
	ActiveColor     = color.RGBA{220, 160, 40, 255}
	DangerColor     = color.RGBA{220, 60, 60, 255}
	BorderColor     = color.RGBA{200, 200, 210, 255}

	// DefaultPalette: цвета образцов на панели.
	DefaultPalette = []string{
		"#FF0000", "#00FF00", "#0000FF", "#FFFF00",
		"#FF00FF", "#00FFFF", "#000000", "#FFFFFF",
	}
)
