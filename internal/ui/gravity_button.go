// internal/ui/gravity_button.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-showcase/internal/config"
)

// GravityButton — круглый переключатель притяжения к указателю.
// Цвет отражает состояние, после клика кнопка коротко пульсирует.
type GravityButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	On            bool
}

func NewGravityButton(x, y, size float32, on bool) *GravityButton {
	return &GravityButton{
		X:    x,
		Y:    y,
		Size: size,
		On:   on,
	}
}

func (b *GravityButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := b.Size * float32(scale)

	clr := config.GravityOffColor
	if b.On {
		clr = config.GravityOnColor
	}
	vector.DrawFilledCircle(screen, b.X, b.Y, radius, clr, true)
	vector.StrokeCircle(screen, b.X, b.Y, radius, 2, config.DotActiveColor, true)
	// Точка-"ядро" в центре, к которому всё притягивается.
	if b.On {
		vector.DrawFilledCircle(screen, b.X, b.Y, radius*0.3, config.DotActiveColor, true)
	}
}

// IsClicked проверяет, был ли клик внутри кнопки.
func (b *GravityButton) IsClicked(mx, my int) bool {
	dx := float64(mx) - float64(b.X)
	dy := float64(my) - float64(b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size)*1.5
}

// Toggle переключает состояние.
func (b *GravityButton) Toggle() {
	b.On = !b.On
	b.LastClickTime = time.Now()
}
