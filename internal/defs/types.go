// internal/defs/types.go
package defs

// LayerRole — роль слоя в описании шоу.
type LayerRole string

const (
	RoleMaster LayerRole = "master"
	RoleSlave  LayerRole = "slave"
)

// SlideDef — один слайд слоя.
type SlideDef struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Color    string `yaml:"color"` // hex, например "#ff6363"
}

// LayerDef — один слой карусели.
type LayerDef struct {
	ID      string     `yaml:"id"`
	Role    LayerRole  `yaml:"role"`
	Spacing float64    `yaml:"spacing"`
	// Multiplier — параллакс-коэффициент относительно мастера.
	// Если не задан (nil), выводится как spacing слоя / spacing мастера.
	Multiplier *float64   `yaml:"multiplier,omitempty"`
	Depth      float64    `yaml:"depth"`
	Y          float64    `yaml:"y"`
	Slides     []SlideDef `yaml:"slides"`
}

// SlingerDef — один перетаскиваемый объект.
type SlingerDef struct {
	ID     string  `yaml:"id"`
	Label  string  `yaml:"label"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
	Weight int     `yaml:"weight"` // вес при взвешенном выборе акцента
}

// PhysicsDef — настройки симуляции. Нулевые значения означают
// "использовать значение по умолчанию из config".
type PhysicsDef struct {
	GravityPull float64 `yaml:"gravityPull"`
	StageLeft   float64 `yaml:"stageLeft"`
	StageTop    float64 `yaml:"stageTop"`
	StageRight  float64 `yaml:"stageRight"`
	StageBottom float64 `yaml:"stageBottom"`
}

// Definition — корень описания шоу.
type Definition struct {
	Layers   []LayerDef   `yaml:"layers"`
	Slingers []SlingerDef `yaml:"slingers"`
	Physics  PhysicsDef   `yaml:"physics"`
}

// Master возвращает слой-мастер. Валидация гарантирует, что он один.
func (d *Definition) Master() *LayerDef {
	for i := range d.Layers {
		if d.Layers[i].Role == RoleMaster {
			return &d.Layers[i]
		}
	}
	return nil
}
