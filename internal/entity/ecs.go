// internal/entity/ecs.go
package entity

import (
	"go-showcase/internal/component"
	"go-showcase/internal/types"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable

	Carousels map[types.EntityID]*component.Carousel
	Slides    map[types.EntityID]*component.Slide

	Slingers map[types.EntityID]*component.Slinger
	Trails   map[types.EntityID]*component.PointerTrail

	Ripples    map[types.EntityID]*component.Ripple
	Highlights map[types.EntityID]*component.HighlightFlash
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Carousels:   make(map[types.EntityID]*component.Carousel),
		Slides:      make(map[types.EntityID]*component.Slide),
		Slingers:    make(map[types.EntityID]*component.Slinger),
		Trails:      make(map[types.EntityID]*component.PointerTrail),
		Ripples:     make(map[types.EntityID]*component.Ripple),
		Highlights:  make(map[types.EntityID]*component.HighlightFlash),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
