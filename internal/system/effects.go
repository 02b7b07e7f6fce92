// internal/system/effects.go
package system

import (
	"image/color"

	"go-showcase/internal/component"
	"go-showcase/internal/config"
	"go-showcase/internal/entity"
	"go-showcase/internal/types"
)

// EffectSystem ведёт короткоживущие визуальные эффекты: кольца в
// точках столкновений и вспышки подсветки стабилизированного слайда.
type EffectSystem struct {
	ecs *entity.ECS
}

func NewEffectSystem(ecs *entity.ECS) *EffectSystem {
	return &EffectSystem{ecs: ecs}
}

func (s *EffectSystem) Update(deltaTime float64) {
	for id, ripple := range s.ecs.Ripples {
		ripple.Timer += deltaTime
		if ripple.Timer >= ripple.Duration {
			delete(s.ecs.Ripples, id)
		}
	}
	for id, flash := range s.ecs.Highlights {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.Highlights, id)
		}
	}
}

// SpawnRipple создаёт расходящееся кольцо в точке.
func (s *EffectSystem) SpawnRipple(x, y float64, clr color.RGBA) {
	id := s.ecs.NewEntity()
	s.ecs.Ripples[id] = &component.Ripple{
		X:         x,
		Y:         y,
		MaxRadius: config.RippleMaxRadius,
		Color:     clr,
		Duration:  config.RippleDuration,
	}
}

// FlashSlide вешает вспышку подсветки на сущность слайда.
func (s *EffectSystem) FlashSlide(slideID types.EntityID) {
	s.ecs.Highlights[slideID] = &component.HighlightFlash{
		Duration: config.HighlightDuration,
	}
}
