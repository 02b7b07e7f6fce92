// internal/system/layout.go
package system

import (
	"go-showcase/internal/component"
	"go-showcase/internal/config"
	"go-showcase/internal/entity"
	"go-showcase/internal/types"
	"go-showcase/pkg/scroll"
	"go-showcase/pkg/utils"
)

// layoutLayer пересчитывает обёрточные множители и слоты слайдов слоя.
// Вызывается только при смене индекса или направления: уже видимые
// слайды при этом не двигаются, пересаживаются только копии за
// пределами окна видимости.
func layoutLayer(ecs *entity.ECS, layerID types.EntityID, c *component.Carousel) {
	n := c.SlideCount
	if n <= 0 {
		return
	}
	for _, slide := range ecs.Slides {
		if slide.LayerID != layerID {
			continue
		}
		m := scroll.SlotMultiplier(slide.Ordinal, c.CurrentIndex, n, c.Direction,
			config.CarouselAhead, config.CarouselBehind)
		slide.Multiplier = m
		slide.Slot = m*n + slide.Ordinal

		slide.Hidden = utils.Abs(slide.Slot-c.CurrentIndex) > config.CullWindow
	}
}

// syncLayerPositions выводит пиксельные позиции слайдов из слотов и
// текущего смещения оси. Выполняется каждый тик.
func syncLayerPositions(ecs *entity.ECS, layerID types.EntityID, c *component.Carousel) {
	centerX := float64(config.ScreenWidth) / 2
	for id, slide := range ecs.Slides {
		if slide.LayerID != layerID {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		pos.X = centerX + float64(slide.Slot)*c.Spacing - c.Axis.Offset
		pos.Y = c.BaseY
	}
}
