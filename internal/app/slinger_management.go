// internal/app/slinger_management.go
package app

import (
	"log"

	"go-showcase/internal/component"
	"go-showcase/internal/config"
	"go-showcase/pkg/render"
)

// spawnSlingers расставляет слингеры псевдослучайно внутри границ
// контейнера с небольшой стартовой скоростью. Набор фиксирован на всё
// время жизни сцены — объекты не создаются и не умирают по одному.
func (s *Stage) spawnSlingers() {
	left, top, right, bottom := s.Bounds()
	featured := s.Rng.ChooseWeighted(s.Def.Slingers)

	for i := range s.Def.Slingers {
		sd := &s.Def.Slingers[i]
		clr, err := render.ParseHexColor(sd.Color)
		if err != nil {
			log.Printf("slinger %q: %v, using palette color", sd.ID, err)
			clr = config.SlingerColors[s.Rng.Intn(len(config.SlingerColors))]
		}

		margin := sd.Radius + 20
		id := s.ECS.NewEntity()
		s.ECS.Slingers[id] = &component.Slinger{
			DefID:    sd.ID,
			Label:    sd.Label,
			Radius:   sd.Radius,
			Color:    clr,
			Featured: sd.ID == featured,
		}
		s.ECS.Positions[id] = &component.Position{
			X: s.Rng.FloatRange(left+margin, right-margin),
			Y: s.Rng.FloatRange(top+margin, bottom-margin),
		}
		s.ECS.Velocities[id] = &component.Velocity{
			VX: s.Rng.FloatRange(-2.5, 2.5),
			VY: s.Rng.FloatRange(-2.5, 2.5),
		}
		s.ECS.Trails[id] = &component.PointerTrail{Window: config.TrailWindow}
	}
}
