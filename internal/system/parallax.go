// internal/system/parallax.go
package system

import (
	"math"

	"go-showcase/internal/component"
	"go-showcase/internal/config"
	"go-showcase/internal/entity"
	"go-showcase/internal/event"
	"go-showcase/internal/types"
	"go-showcase/pkg/scroll"
)

// ParallaxSystem проецирует смещение мастера на ведомые слои:
// slaveOffset = masterOffset * multiplier, без сглаживания.
// Ведомый слой не порождает собственных событий индекса — его
// локальный индекс нужен только для раскладки и отсечения.
type ParallaxSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	masterID        types.EntityID
}

func NewParallaxSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, masterID types.EntityID) *ParallaxSystem {
	ps := &ParallaxSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		masterID:        masterID,
	}
	eventDispatcher.Subscribe(event.SlideStabilized, ps)
	return ps
}

// Update выполняется в том же тике сразу после CarouselSystem:
// между мастером и ведомыми нет кадрового лага.
func (s *ParallaxSystem) Update(deltaTime float64) {
	master, ok := s.ecs.Carousels[s.masterID]
	if !ok || master.Axis == nil {
		return
	}
	masterOffset := master.Axis.Offset

	for id, c := range s.ecs.Carousels {
		if c.Role != component.RoleSlave || c.SlideCount <= 0 || c.Axis == nil {
			continue
		}
		c.Axis.Offset = masterOffset * c.Multiplier

		spacing := c.Spacing
		if spacing < config.MinSlideSpacing {
			spacing = config.MinSlideSpacing
		}
		newIndex := int(math.Round(c.Axis.Offset / spacing))
		if newIndex != c.CurrentIndex {
			if newIndex > c.CurrentIndex {
				c.Direction = scroll.DirectionRight
			} else {
				c.Direction = scroll.DirectionLeft
			}
			c.CurrentIndex = newIndex
			layoutLayer(s.ecs, id, c)
		}
		syncLayerPositions(s.ecs, id, c)
	}
}

// Relayout принудительно пересобирает раскладку всех ведомых слоёв
// (стартовая инициализация: смены индекса ещё не было).
func (s *ParallaxSystem) Relayout() {
	for id, c := range s.ecs.Carousels {
		if c.Role != component.RoleSlave {
			continue
		}
		layoutLayer(s.ecs, id, c)
		syncLayerPositions(s.ecs, id, c)
	}
}

// OnEvent: на стабилизации подсвечиваем соответствующий по индексу
// слайд во всех слоях одновременно.
func (s *ParallaxSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.SlideStabilizedData)
	if !ok {
		return
	}
	for layerID, c := range s.ecs.Carousels {
		normalized := scroll.NormalizeIndex(data.Index, c.SlideCount)
		for _, slide := range s.ecs.Slides {
			if slide.LayerID != layerID {
				continue
			}
			slide.Highlight = slide.Ordinal == normalized
		}
	}
}
