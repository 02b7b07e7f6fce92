// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-showcase/internal/config"
)

// InfoPanel показывает заголовок и подзаголовок стабилизированного
// слайда. Обновляется только по событию стабилизации, не каждый тик.
type InfoPanel struct {
	X, Y      float32
	Width     float32
	Height    float32
	titleFace font.Face
	subFace   font.Face

	title    string
	subtitle string
	index    int
	total    int
}

// NewInfoPanel создает новую панель.
func NewInfoPanel(x, y float32, titleFace, subFace font.Face, total int) *InfoPanel {
	return &InfoPanel{
		X:         x,
		Y:         y,
		Width:     float32(config.InfoPanelWidth),
		Height:    float32(config.InfoPanelHeight),
		titleFace: titleFace,
		subFace:   subFace,
		total:     total,
	}
}

// SetSlide обновляет содержимое панели.
func (p *InfoPanel) SetSlide(title, subtitle string, index int) {
	p.title = title
	p.subtitle = subtitle
	p.index = index
}

// Draw отрисовывает панель.
func (p *InfoPanel) Draw(screen *ebiten.Image) {
	// --- Фон и рамка ---
	bgColor := color.RGBA{R: 20, G: 20, B: 30, A: 230}
	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, p.Height, bgColor, false)
	borderColor := color.RGBA{R: 70, G: 100, B: 120, A: 255}
	vector.StrokeRect(screen, p.X, p.Y, p.Width, p.Height, 2, borderColor, false)

	// --- Заголовок ---
	if p.title != "" {
		text.Draw(screen, p.title, p.titleFace, int(p.X)+16, int(p.Y)+32, config.TextLightColor)
	}
	if p.subtitle != "" {
		text.Draw(screen, p.subtitle, p.subFace, int(p.X)+16, int(p.Y)+56, config.TextDimColor)
	}

	// --- Счётчик справа ---
	counter := fmt.Sprintf("%d / %d", p.index+1, p.total)
	bounds := text.BoundString(p.subFace, counter)
	text.Draw(screen, counter, p.subFace,
		int(p.X+p.Width)-bounds.Dx()-16, int(p.Y)+32, config.TextDimColor)
}
