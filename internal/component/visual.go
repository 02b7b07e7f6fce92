// internal/component/visual.go
package component

import "image/color"

// Ripple — расходящееся кольцо в точке столкновения или события.
type Ripple struct {
	X, Y      float64
	MaxRadius float64
	Color     color.RGBA
	Timer     float64 // сколько времени эффект уже активен
	Duration  float64 // общая продолжительность эффекта
}

// HighlightFlash — кратковременная подсветка стабилизированного слайда.
type HighlightFlash struct {
	Timer    float64
	Duration float64
}
