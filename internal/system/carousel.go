// internal/system/carousel.go
package system

import (
	"log"
	"math"

	"go-showcase/internal/config"
	"go-showcase/internal/entity"
	"go-showcase/internal/event"
	"go-showcase/internal/types"
	"go-showcase/pkg/scroll"
)

// CarouselSystem ведёт мастер-слой: инерция оси, вывод индекса из
// смещения, дебаунс стабилизации и раскладка слотов. Ведомые слои
// обновляет ParallaxSystem.
type CarouselSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	masterID        types.EntityID
	spacingWarned   bool
}

func NewCarouselSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, masterID types.EntityID) *CarouselSystem {
	return &CarouselSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		masterID:        masterID,
	}
}

func (s *CarouselSystem) Update(deltaTime float64) {
	c, ok := s.ecs.Carousels[s.masterID]
	if !ok || c.SlideCount <= 0 || c.Axis == nil {
		return
	}

	c.Axis.Update(deltaTime)

	spacing := c.Spacing
	if spacing < config.MinSlideSpacing {
		// Некорректный шаг — не роняем кадровый цикл, прижимаем к минимуму.
		// Предупреждаем один раз, Update вызывается каждый тик.
		if !s.spacingWarned {
			log.Printf("carousel %q: spacing %v below minimum, clamping", c.DefID, spacing)
			s.spacingWarned = true
		}
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
		c.AwaitingStable = true
		c.StableTimer = 0

		s.eventDispatcher.Dispatch(event.Event{Type: event.SlideChanged, Data: event.SlideChangedData{
			Layer:     s.masterID,
			Index:     newIndex,
			Direction: c.Direction,
		}})

		layoutLayer(s.ecs, s.masterID, c)
	} else if c.AwaitingStable {
		c.StableTimer += deltaTime
		if c.StableTimer >= config.StabilizeDelay {
			c.AwaitingStable = false
			s.eventDispatcher.Dispatch(event.Event{Type: event.SlideStabilized, Data: event.SlideStabilizedData{
				Layer:      s.masterID,
				Index:      c.CurrentIndex,
				Normalized: c.NormalizedIndex(),
				Direction:  c.Direction,
				Trigger:    c.Trigger,
			}})
		}
	}

	syncLayerPositions(s.ecs, s.masterID, c)
}

// ApplyScroll — прямое смещение оси (перетаскивание фона).
func (s *CarouselSystem) ApplyScroll(delta float64) {
	if c, ok := s.ecs.Carousels[s.masterID]; ok {
		c.Trigger = types.TriggerUser
		c.Axis.ApplyDelta(delta)
	}
}

// Flick — инерционный бросок (колесо, отпускание жеста).
func (s *CarouselSystem) Flick(v float64) {
	if c, ok := s.ecs.Carousels[s.masterID]; ok {
		c.Trigger = types.TriggerUser
		c.Axis.Flick(v)
	}
}

// Halt останавливает ось (начало ручного захвата).
func (s *CarouselSystem) Halt() {
	if c, ok := s.ecs.Carousels[s.masterID]; ok {
		c.Axis.Halt()
	}
}

// ScrollToSlide — императивный подъезд к слайду по кратчайшей дуге.
// Делегируется только мастеру; ведомые слои чисто реактивны.
func (s *CarouselSystem) ScrollToSlide(target int) {
	c, ok := s.ecs.Carousels[s.masterID]
	if !ok || c.SlideCount <= 0 {
		return
	}
	normalized := scroll.NormalizeIndex(target, c.SlideCount)
	raw := scroll.NearestWrappedIndex(c.CurrentIndex, normalized, c.SlideCount)
	c.Trigger = types.TriggerScrollTo
	c.Axis.GlideTo(float64(raw) * c.Spacing)
}

// SnapToSlide мгновенно ставит мастера на слайд без анимации
// (стартовая раскладка, восстановление сессии).
func (s *CarouselSystem) SnapToSlide(target int) {
	c, ok := s.ecs.Carousels[s.masterID]
	if !ok || c.SlideCount <= 0 {
		return
	}
	normalized := scroll.NormalizeIndex(target, c.SlideCount)
	c.Axis.Halt()
	c.Axis.Offset = float64(normalized) * c.Spacing
	c.CurrentIndex = normalized
	c.AwaitingStable = false
	layoutLayer(s.ecs, s.masterID, c)
	syncLayerPositions(s.ecs, s.masterID, c)
}

// MasterID возвращает сущность мастер-слоя.
func (s *CarouselSystem) MasterID() types.EntityID {
	return s.masterID
}
