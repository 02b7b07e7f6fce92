// internal/component/slinger.go
package component

import "image/color"

// Slinger — перетаскиваемый физический объект на сцене.
type Slinger struct {
	DefID  string
	Label  string
	Radius float64
	Color  color.RGBA
	// Featured — объект, выбранный взвешенным рандомом при старте;
	// рисуется с акцентной обводкой.
	Featured bool

	Dragging      bool
	HasBecomeIdle bool    // защита от повторной отправки idle-события
	LastReleaseAt float64 // игровое время броска, сек (грейс для гравитации)
	LastActiveAt  float64
}
