// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MarkerColor is the fill of the vertex markers drawn on the edit target.
var MarkerColor = color.RGBA{0, 0, 0, 255}

// ParseHex converts "#rrggbb" or "#rgb" (the leading '#' is optional) into an
// opaque RGBA color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats c as "#RRGGBB", dropping alpha.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return strings.ToUpper(cf.Hex())
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Contrast picks dark or light text for a background by average brightness.
func Contrast(bg color.RGBA, dark, light color.RGBA) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return dark
	}
	return light
}
