// internal/defs/default.go
package defs

// DefaultShow — встроенное описание шоу на случай отсутствия файла
// конфигурации: демо запускается без внешних данных.
func DefaultShow() *Definition {
	return &Definition{
		Layers: []LayerDef{
			{
				ID:      "backdrop",
				Role:    RoleSlave,
				Spacing: 100,
				Depth:   0.35,
				Y:       380,
				Slides: []SlideDef{
					{ID: "bd-1", Title: "·", Color: "#2e3a55"},
					{ID: "bd-2", Title: "·", Color: "#2b4a45"},
					{ID: "bd-3", Title: "·", Color: "#4a2b40"},
					{ID: "bd-4", Title: "·", Color: "#3d3d2b"},
					{ID: "bd-5", Title: "·", Color: "#33315a"},
				},
			},
			{
				ID:      "projects",
				Role:    RoleMaster,
				Spacing: 300,
				Depth:   1.0,
				Y:       430,
				Slides: []SlideDef{
					{ID: "p-atlas", Title: "Atlas", Subtitle: "mapping pipeline", Color: "#ff6363"},
					{ID: "p-ember", Title: "Ember", Subtitle: "particle toys", Color: "#e6aa3c"},
					{ID: "p-tide", Title: "Tide", Subtitle: "audio visualizer", Color: "#6396ff"},
					{ID: "p-grove", Title: "Grove", Subtitle: "generative flora", Color: "#63ff8c"},
					{ID: "p-lumen", Title: "Lumen", Subtitle: "light studies", Color: "#be63e6"},
				},
			},
		},
		Slingers: []SlingerDef{
			{ID: "s-1", Label: "go", Radius: 25, Color: "#ff6363", Weight: 3},
			{ID: "s-2", Label: "ts", Radius: 21, Color: "#6396ff", Weight: 3},
			{ID: "s-3", Label: "gl", Radius: 18, Color: "#63ff8c", Weight: 1},
		},
		Physics: PhysicsDef{},
	}
}
