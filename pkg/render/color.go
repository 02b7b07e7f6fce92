// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
)

// ParseHexColor разбирает строку вида "#rrggbb" в color.RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// DarkenColor scales the brightness of a color. Factor above 1 lightens,
// with clamping at 255.
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * factor
		if f > 255 {
			f = 255
		}
		return uint8(f)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// WithAlpha возвращает цвет с заданной альфой (premultiplied-friendly
// для наших сплошных цветов).
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}
