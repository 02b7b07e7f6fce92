// internal/system/render.go
package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-showcase/internal/config"
	"go-showcase/internal/entity"
	"go-showcase/internal/types"
	"go-showcase/pkg/render"
)

// RenderSystem отрисовывает сцену: слои каруселей от дальнего к
// ближнему, затем слингеры, затем эффекты. Сами карточки слайдов
// предрендерены в CardRenderer — здесь только блиты и примитивы.
type RenderSystem struct {
	ecs       *entity.ECS
	cards     *render.CardRenderer
	labelFace font.Face
}

func NewRenderSystem(ecs *entity.ECS, cards *render.CardRenderer, labelFace font.Face) *RenderSystem {
	return &RenderSystem{
		ecs:       ecs,
		cards:     cards,
		labelFace: labelFace,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	s.drawLayers(screen)
	s.drawSlingers(screen)
	s.drawRipples(screen)
}

func (s *RenderSystem) drawLayers(screen *ebiten.Image) {
	// Слои сортируем по глубине: дальние рисуются первыми.
	type layerRef struct {
		id    types.EntityID
		depth float64
	}
	layers := make([]layerRef, 0, len(s.ecs.Carousels))
	for id, c := range s.ecs.Carousels {
		layers = append(layers, layerRef{id: id, depth: c.Depth})
	}
	sort.Slice(layers, func(i, j int) bool { return layers[i].depth < layers[j].depth })

	cw, ch := s.cards.Size()
	for _, layer := range layers {
		c := s.ecs.Carousels[layer.id]
		scale := 0.55 + 0.45*c.Depth
		shade := float32(0.45 + 0.55*c.Depth)

		for slideID, slide := range s.ecs.Slides {
			if slide.LayerID != layer.id || slide.Hidden {
				continue
			}
			pos := s.ecs.Positions[slideID]
			rend := s.ecs.Renderables[slideID]
			if pos == nil || rend == nil {
				continue
			}

			img := s.cards.Card(slide.DefID, slide.Title, slide.Subtitle, rend.Color)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(pos.X-float64(cw)*scale/2, pos.Y-float64(ch)*scale/2)
			op.ColorScale.Scale(shade, shade, shade, 1)
			screen.DrawImage(img, op)

			if slide.Highlight {
				w := float32(float64(cw) * scale)
				h := float32(float64(ch) * scale)
				x := float32(pos.X) - w/2
				y := float32(pos.Y) - h/2
				vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, config.HighlightColor, false)
			}
			if flash, ok := s.ecs.Highlights[slideID]; ok {
				p := flash.Timer / flash.Duration
				alpha := uint8(160 * (1 - p))
				w := float32(float64(cw) * scale)
				h := float32(float64(ch) * scale)
				vector.DrawFilledRect(screen, float32(pos.X)-w/2, float32(pos.Y)-h/2, w, h,
					render.WithAlpha(config.HighlightColor, alpha), false)
			}
		}
	}
}

func (s *RenderSystem) drawSlingers(screen *ebiten.Image) {
	for id, sl := range s.ecs.Slingers {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		x := float32(pos.X)
		y := float32(pos.Y)
		r := float32(sl.Radius)

		fill := sl.Color
		if sl.Dragging {
			fill = render.DarkenColor(fill, 1.15)
		}
		vector.DrawFilledCircle(screen, x, y, r, fill, true)
		ring := config.CardStrokeColor
		if sl.Featured {
			ring = config.HighlightColor
		}
		vector.StrokeCircle(screen, x, y, r, 2, ring, true)

		if sl.Label != "" {
			bounds := text.BoundString(s.labelFace, sl.Label)
			text.Draw(screen, sl.Label, s.labelFace,
				int(pos.X)-bounds.Dx()/2, int(pos.Y)+bounds.Dy()/2, config.TextLightColor)
		}
	}
}

func (s *RenderSystem) drawRipples(screen *ebiten.Image) {
	for _, ripple := range s.ecs.Ripples {
		p := ripple.Timer / ripple.Duration
		if p >= 1 {
			continue
		}
		radius := float32(ripple.MaxRadius * p)
		alpha := uint8(float64(ripple.Color.A) * (1 - p))
		vector.StrokeCircle(screen, float32(ripple.X), float32(ripple.Y), radius, 2,
			render.WithAlpha(ripple.Color, alpha), true)
	}
}
