package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nubo/training/internal/models"
)

// TestDefaultCatalog verifies the embedded catalog parses and covers every
// muscle group the program generator asks for.
func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}
	for _, mg := range []models.MuscleGroup{
		models.MuscleLegs, models.MuscleChest, models.MuscleBack,
		models.MuscleShoulders, models.MuscleArms, models.MuscleAbs, models.MuscleGlutes,
	} {
		if len(c.ByMuscleGroup(mg)) == 0 {
			t.Errorf("no exercises for muscle group %q", mg)
		}
	}
	if _, ok := c.Get("barbell-squat"); !ok {
		t.Error("barbell-squat missing from default catalog")
	}
}

// TestWithEquipment verifies the intersection filter keeps declaration order
// and drops exercises without any allowed equipment.
func TestWithEquipment(t *testing.T) {
	c := Default()
	got := c.WithEquipment([]models.Equipment{models.EquipmentKettlebell})
	want := []string{"goblet-squat", "kettlebell-swing", "kettlebell-press"}
	if len(got) != len(want) {
		t.Fatalf("WithEquipment(kettlebell) = %d exercises, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("exercise[%d] = %q, want %q", i, got[i].ID, id)
		}
	}

	if got := c.WithEquipment(nil); len(got) != 0 {
		t.Errorf("WithEquipment(nil) = %d exercises, want 0", len(got))
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing id", `exercises: [{name: A, muscle_group: legs, equipment: [barbell]}]`},
		{"bad muscle group", `exercises: [{id: a, name: A, muscle_group: calves, equipment: [barbell]}]`},
		{"no equipment", `exercises: [{id: a, name: A, muscle_group: legs}]`},
		{"bad equipment", `exercises: [{id: a, name: A, muscle_group: legs, equipment: [rope]}]`},
		{"duplicate id", `exercises: [{id: a, name: A, muscle_group: legs, equipment: [barbell]}, {id: a, name: B, muscle_group: abs, equipment: [bodyweight]}]`},
		{"not yaml", `exercises: [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
exercises:
  - id: sled-push
    name: Толкание саней
    muscle_group: legs
    equipment: [other]
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ex, ok := c.Get("sled-push")
	if !ok {
		t.Fatal("sled-push not loaded")
	}
	if ex.Equipment[0] != models.EquipmentOther {
		t.Errorf("equipment = %v, want [other]", ex.Equipment)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestMerge verifies custom exercises are appended and flagged, and never
// replace a built-in exercise with the same id.
func TestMerge(t *testing.T) {
	c := Default()
	merged := c.Merge([]models.Exercise{
		{ID: "my-row", Name: "Моя тяга", MuscleGroup: models.MuscleBack, Equipment: []models.Equipment{models.EquipmentOther}},
		{ID: "barbell-squat", Name: "Подмена", MuscleGroup: models.MuscleLegs},
	})
	if merged.Len() != c.Len()+1 {
		t.Fatalf("merged len = %d, want %d", merged.Len(), c.Len()+1)
	}
	ex, ok := merged.Get("my-row")
	if !ok || !ex.IsCustom {
		t.Errorf("my-row = %+v, want custom exercise", ex)
	}
	squat, _ := merged.Get("barbell-squat")
	if squat.Name == "Подмена" {
		t.Error("custom exercise replaced built-in barbell-squat")
	}
	if c.Len() == merged.Len() {
		t.Error("Merge mutated the receiver")
	}
}
