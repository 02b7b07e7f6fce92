// internal/component/render.go
package component

import "image/color"

// Renderable — базовый визуальный компонент.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}
