package defs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeShow(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "show.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validShow = `
layers:
  - id: backdrop
    role: slave
    spacing: 100
    depth: 0.4
    slides:
      - { id: b1, title: one, color: "#112233" }
  - id: main
    role: master
    spacing: 300
    depth: 1.0
    slides:
      - { id: m1, title: alpha, subtitle: first, color: "#ff6363" }
      - { id: m2, title: beta, color: "#6396ff" }
slingers:
  - { id: s1, label: go, radius: 20, color: "#ff6363", weight: 2 }
physics:
  gravityPull: 0.5
`

func TestLoadValidShow(t *testing.T) {
	def, err := Load(writeShow(t, validShow))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(def.Layers) != 2 || len(def.Slingers) != 1 {
		t.Fatalf("unexpected shape: %d layers, %d slingers", len(def.Layers), len(def.Slingers))
	}
	master := def.Master()
	if master == nil || master.ID != "main" {
		t.Fatalf("Master() = %v", master)
	}
	if def.Physics.GravityPull != 0.5 {
		t.Errorf("GravityPull = %v", def.Physics.GravityPull)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want fs.ErrNotExist, got %v", err)
	}
}

func TestValidateRejectsBadShows(t *testing.T) {
	slide := SlideDef{ID: "s", Title: "t", Color: "#000000"}
	cases := []struct {
		name    string
		def     Definition
		wantSub string
	}{
		{
			name:    "no layers",
			def:     Definition{},
			wantSub: "no layers",
		},
		{
			name: "no master",
			def: Definition{Layers: []LayerDef{
				{ID: "a", Role: RoleSlave, Spacing: 100, Slides: []SlideDef{slide}},
			}},
			wantSub: "exactly one master",
		},
		{
			name: "two masters",
			def: Definition{Layers: []LayerDef{
				{ID: "a", Role: RoleMaster, Spacing: 100, Slides: []SlideDef{slide}},
				{ID: "b", Role: RoleMaster, Spacing: 100, Slides: []SlideDef{slide}},
			}},
			wantSub: "exactly one master",
		},
		{
			name: "unknown role",
			def: Definition{Layers: []LayerDef{
				{ID: "a", Role: "boss", Spacing: 100, Slides: []SlideDef{slide}},
			}},
			wantSub: "unknown role",
		},
		{
			name: "empty layer",
			def: Definition{Layers: []LayerDef{
				{ID: "a", Role: RoleMaster, Spacing: 100},
			}},
			wantSub: "at least one slide",
		},
		{
			name: "zero spacing",
			def: Definition{Layers: []LayerDef{
				{ID: "a", Role: RoleMaster, Spacing: 0, Slides: []SlideDef{slide}},
			}},
			wantSub: "spacing",
		},
		{
			name: "bad slinger radius",
			def: Definition{
				Layers: []LayerDef{
					{ID: "a", Role: RoleMaster, Spacing: 100, Slides: []SlideDef{slide}},
				},
				Slingers: []SlingerDef{{ID: "x", Radius: -1}},
			},
			wantSub: "radius",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.def.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), c.wantSub) {
				t.Errorf("error %q does not mention %q", err, c.wantSub)
			}
		})
	}
}

func TestLayerMultiplierDefaultsToSpacingRatio(t *testing.T) {
	explicit := 0.7
	def := Definition{Layers: []LayerDef{
		{ID: "bg", Role: RoleSlave, Spacing: 100},
		{ID: "mid", Role: RoleSlave, Spacing: 150, Multiplier: &explicit},
		{ID: "main", Role: RoleMaster, Spacing: 300},
	}}

	if got := def.LayerMultiplier(&def.Layers[0]); got != 100.0/300.0 {
		t.Errorf("derived multiplier = %v, want spacing ratio", got)
	}
	if got := def.LayerMultiplier(&def.Layers[1]); got != 0.7 {
		t.Errorf("explicit multiplier = %v, want 0.7", got)
	}
	if got := def.LayerMultiplier(&def.Layers[2]); got != 1.0 {
		t.Errorf("master multiplier = %v, want 1", got)
	}
}

func TestDefaultShowIsValid(t *testing.T) {
	if err := DefaultShow().Validate(); err != nil {
		t.Fatalf("built-in show does not validate: %v", err)
	}
}
