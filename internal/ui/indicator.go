// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-showcase/internal/config"
)

// SlideIndicator — ряд точек по числу слайдов мастера. Активная точка
// пульсирует после клика, клик по точке — команда scroll-to.
type SlideIndicator struct {
	CenterX       float32
	Y             float32
	Count         int
	Radius        float32
	Gap           float32
	LastClickTime time.Time
}

func NewSlideIndicator(centerX, y float32, count int) *SlideIndicator {
	return &SlideIndicator{
		CenterX: centerX,
		Y:       y,
		Count:   count,
		Radius:  float32(config.IndicatorRadius),
		Gap:     float32(config.IndicatorGap),
	}
}

func (i *SlideIndicator) dotX(n int) float32 {
	total := float32(i.Count-1) * i.Gap
	return i.CenterX - total/2 + float32(n)*i.Gap
}

// Draw отрисовывает индикатор; active — нормализованный индекс.
func (i *SlideIndicator) Draw(screen *ebiten.Image, active int) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	pulse := 1.0 + 0.3*math.Exp(-elapsed*8)

	for n := 0; n < i.Count; n++ {
		r := i.Radius * 0.7
		clr := config.DotIdleColor
		if n == active {
			r = i.Radius * float32(pulse)
			clr = config.DotActiveColor
		}
		vector.DrawFilledCircle(screen, i.dotX(n), i.Y, r, clr, true)
	}
}

// HitTest возвращает индекс точки под курсором, если клик попал.
func (i *SlideIndicator) HitTest(mx, my int) (int, bool) {
	for n := 0; n < i.Count; n++ {
		dx := float64(mx) - float64(i.dotX(n))
		dy := float64(my) - float64(i.Y)
		if math.Hypot(dx, dy) <= float64(i.Radius)*1.6 {
			return n, true
		}
	}
	return 0, false
}

// HandleClick запускает пульс после клика.
func (i *SlideIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
