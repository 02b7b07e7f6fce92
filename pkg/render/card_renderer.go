// pkg/render/card_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// CardStyle — цвета оформления карточек, общие для всех слайдов.
type CardStyle struct {
	StrokeColor   color.RGBA
	TitleColor    color.RGBA
	SubtitleColor color.RGBA
	StrokeWidth   float32
}

// CardRenderer предрендерит карточку каждого слайда один раз и дальше
// раздаёт готовые изображения: раскладка слоёв сводится к дешёвым блитам.
type CardRenderer struct {
	width     int
	height    int
	style     CardStyle
	titleFace font.Face
	subFace   font.Face
	cards     map[string]*ebiten.Image
}

func NewCardRenderer(width, height int, style CardStyle, titleFace, subFace font.Face) *CardRenderer {
	return &CardRenderer{
		width:     width,
		height:    height,
		style:     style,
		titleFace: titleFace,
		subFace:   subFace,
		cards:     make(map[string]*ebiten.Image),
	}
}

// Card возвращает предрендеренную карточку слайда, создавая её при
// первом обращении.
func (r *CardRenderer) Card(id, title, subtitle string, fill color.RGBA) *ebiten.Image {
	if img, ok := r.cards[id]; ok {
		return img
	}
	img := r.renderCard(title, subtitle, fill)
	r.cards[id] = img
	return img
}

func (r *CardRenderer) renderCard(title, subtitle string, fill color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(r.width, r.height)
	w := float32(r.width)
	h := float32(r.height)

	vector.DrawFilledRect(img, 0, 0, w, h, fill, false)
	// Лёгкий градиент вниз, чтобы карточка не выглядела плоской плиткой.
	vector.DrawFilledRect(img, 0, h*0.72, w, h*0.28, DarkenColor(fill, 0.8), false)
	vector.StrokeRect(img, 1, 1, w-2, h-2, r.style.StrokeWidth, r.style.StrokeColor, false)

	if title != "" {
		bounds := text.BoundString(r.titleFace, title)
		tx := (r.width - bounds.Dx()) / 2
		ty := r.height/2 + bounds.Dy()/2
		text.Draw(img, title, r.titleFace, tx, ty, r.style.TitleColor)
	}
	if subtitle != "" {
		bounds := text.BoundString(r.subFace, subtitle)
		tx := (r.width - bounds.Dx()) / 2
		ty := r.height - 14
		text.Draw(img, subtitle, r.subFace, tx, ty, r.style.SubtitleColor)
	}
	return img
}

// Size возвращает размеры карточки.
func (r *CardRenderer) Size() (int, int) {
	return r.width, r.height
}
