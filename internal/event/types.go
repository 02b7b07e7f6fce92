// internal/event/types.go
package event

import (
	"go-showcase/internal/types"
	"go-showcase/pkg/scroll"
)

const (
	SlideChanged    EventType = "SlideChanged"    // индекс мастера изменился
	SlideStabilized EventType = "SlideStabilized" // прокрутка устаканилась
	DragStarted     EventType = "DragStarted"
	DragEnded       EventType = "DragEnded"
	WallHit         EventType = "WallHit"
	SlingerIdle     EventType = "SlingerIdle" // слингер остановился
	GravityToggled  EventType = "GravityToggled"
)

// SlideChangedData — сырой (ненормализованный) индекс и направление.
type SlideChangedData struct {
	Layer     types.EntityID
	Index     int
	Direction scroll.Direction
}

// SlideStabilizedData — событие стабилизации: прокрутка затихла на
// одном индексе на время дебаунса.
type SlideStabilizedData struct {
	Layer      types.EntityID
	Index      int // сырой
	Normalized int
	Direction  scroll.Direction
	Trigger    types.Trigger
}

// DragData — начало/конец перетаскивания слингера.
type DragData struct {
	Slinger types.EntityID
	X, Y    float64
}

// WallHitData — столкновение слингера со стеной контейнера.
type WallHitData struct {
	Slinger types.EntityID
	Wall    types.Wall
	X, Y    float64 // позиция после прижатия к стене
}

// SlingerIdleData — слингер перешёл в покой.
type SlingerIdleData struct {
	Slinger types.EntityID
	X, Y    float64
}
