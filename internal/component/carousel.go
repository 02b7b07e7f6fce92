// internal/component/carousel.go
package component

import (
	"go-showcase/internal/types"
	"go-showcase/pkg/scroll"
)

// LayerRole — роль слоя карусели в параллакс-связке.
type LayerRole string

const (
	RoleMaster LayerRole = "master"
	RoleSlave  LayerRole = "slave"
)

// Carousel — состояние одного слоя карусели. Мастер владеет осью
// прокрутки, ведомые слои получают смещение напрямую из проекции
// мастера, минуя собственную логику индексов.
type Carousel struct {
	DefID      string
	Role       LayerRole
	Spacing    float64
	Multiplier float64 // параллакс-коэффициент относительно мастера
	SlideCount int
	Depth      float64 // 0..1, глубина слоя для масштаба/затемнения
	BaseY      float64

	Axis *scroll.Axis

	CurrentIndex int // сырой индекс, НЕ нормализован
	Direction    scroll.Direction

	// Стабилизация: накопитель тишины после последней смены индекса.
	AwaitingStable bool
	StableTimer    float64
	Trigger        types.Trigger
}

// NormalizedIndex возвращает текущий индекс в диапазоне [0, SlideCount).
func (c *Carousel) NormalizedIndex() int {
	return scroll.NormalizeIndex(c.CurrentIndex, c.SlideCount)
}

// Slide — один слайд слоя. Позиция слайда целиком выводится из
// слота, сам массив слайдов никогда не переупорядочивается.
type Slide struct {
	LayerID    types.EntityID
	DefID      string
	Title      string
	Subtitle   string
	Ordinal    int
	Multiplier int // число полных оборотов последовательности
	Slot       int // Multiplier*N + Ordinal
	Hidden     bool
	Highlight  bool
}
