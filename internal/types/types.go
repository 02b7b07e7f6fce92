// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS.
type EntityID uint64

// Trigger — источник события стабилизации: жест пользователя
// или программный scroll-to.
type Trigger string

const (
	TriggerUser     Trigger = "USER"
	TriggerScrollTo Trigger = "SCROLL_TO"
)

// Wall — идентификатор стены контейнера при столкновении.
type Wall string

const (
	WallLeft   Wall = "LEFT"
	WallRight  Wall = "RIGHT"
	WallTop    Wall = "TOP"
	WallBottom Wall = "BOTTOM"
)
