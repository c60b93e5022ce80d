// internal/panel/layout.go
package panel

import (
	"go-polygon-editor/internal/config"
	"go-polygon-editor/pkg/geom"
)

// LayoutFromSettings places the panel to the right of the canvas.
func LayoutFromSettings(s config.Settings) Layout {
	return Layout{
		Origin:     geom.Pt(float64(s.CanvasWidth), 0),
		Width:      float64(s.PanelWidth),
		Height:     float64(s.CanvasHeight),
		Padding:    config.PanelPadding,
		RowHeight:  config.PanelRowH,
		Swatch:     config.SwatchSize,
		ButtonW:    config.ButtonWidth,
		WidthStep:  1,
		LabelColor: config.TextLightColor,
		Button:     config.ButtonColor,
		Active:     config.ActiveColor,
		Danger:     config.DangerColor,
	}
}
