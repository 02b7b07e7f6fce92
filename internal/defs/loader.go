// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load читает YAML-описание шоу и валидирует его.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read show definition: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse show definition: %w", err)
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid show definition: %w", err)
	}

	return &def, nil
}

// Validate проверяет конфигурацию целиком. Ровно один мастер —
// жёсткое требование: молчаливый выбор первого попавшегося слоя
// маскирует ошибку конфигурации.
func (d *Definition) Validate() error {
	if len(d.Layers) == 0 {
		return fmt.Errorf("no layers defined")
	}

	masters := 0
	for i := range d.Layers {
		l := &d.Layers[i]
		switch l.Role {
		case RoleMaster:
			masters++
		case RoleSlave:
		default:
			return fmt.Errorf("layer %q: unknown role %q", l.ID, l.Role)
		}
		if len(l.Slides) == 0 {
			return fmt.Errorf("layer %q: must have at least one slide", l.ID)
		}
		if l.Spacing <= 0 {
			return fmt.Errorf("layer %q: spacing must be positive, got %v", l.ID, l.Spacing)
		}
		if l.Multiplier != nil && *l.Multiplier <= 0 {
			return fmt.Errorf("layer %q: multiplier must be positive, got %v", l.ID, *l.Multiplier)
		}
	}
	if masters != 1 {
		return fmt.Errorf("exactly one master layer required, got %d", masters)
	}

	for i := range d.Slingers {
		s := &d.Slingers[i]
		if s.Radius <= 0 {
			return fmt.Errorf("slinger %q: radius must be positive, got %v", s.ID, s.Radius)
		}
	}

	return nil
}

// LayerMultiplier возвращает итоговый параллакс-коэффициент слоя:
// явный, если задан, иначе spacing слоя / spacing мастера.
func (d *Definition) LayerMultiplier(l *LayerDef) float64 {
	if l.Multiplier != nil {
		return *l.Multiplier
	}
	master := d.Master()
	if master == nil || master.Spacing <= 0 {
		return 1.0
	}
	return l.Spacing / master.Spacing
}
