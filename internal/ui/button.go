// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	TextColor           color.RGBA
	BgColor             color.RGBA
	HoverColor          color.RGBA
	fontFace            font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, label string, fontFace font.Face) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       label,
		TextColor:  color.RGBA{240, 240, 240, 255},
		BgColor:    color.RGBA{45, 45, 65, 255},
		HoverColor: color.RGBA{70, 100, 120, 255},
		fontFace:   fontFace,
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(mx, my int) bool {
	x := float32(mx)
	y := float32(my)
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, mx, my int) {
	bgColor := b.BgColor
	if b.Contains(mx, my) {
		bgColor = b.HoverColor
	}

	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bgColor, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, color.RGBA{120, 120, 140, 255}, false)

	bounds := text.BoundString(b.fontFace, b.Text)
	tx := int(b.X) + (int(b.Width)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.Height)+bounds.Dy())/2
	text.Draw(screen, b.Text, b.fontFace, tx, ty, b.TextColor)
}
