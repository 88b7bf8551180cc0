// Package catalog holds the exercise catalog used by program generation and
// the live-session UI.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/nubo/training/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed exercises.yaml
var builtin []byte

// Catalog is an ordered, immutable set of exercises.
type Catalog struct {
	exercises []models.Exercise
	byID      map[string]int
}

type catalogFile struct {
	Exercises []models.Exercise `yaml:"exercises"`
}

// Default returns the built-in catalog. It panics if the embedded document
// is malformed, which only a broken build can cause.
func Default() *Catalog {
	c, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded exercises.yaml: %v", err))
	}
	return c
}

// Load reads a catalog YAML file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog YAML document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return build(f.Exercises)
}

func build(exercises []models.Exercise) (*Catalog, error) {
	c := &Catalog{
		exercises: make([]models.Exercise, 0, len(exercises)),
		byID:      make(map[string]int, len(exercises)),
	}
	for i, ex := range exercises {
		if err := Validate(ex); err != nil {
			return nil, fmt.Errorf("exercise %d (%q): %w", i, ex.ID, err)
		}
		if _, dup := c.byID[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		c.byID[ex.ID] = len(c.exercises)
		c.exercises = append(c.exercises, ex)
	}
	return c, nil
}

// Validate checks the fields every catalog or custom exercise must carry.
func Validate(ex models.Exercise) error {
	if ex.ID == "" {
		return fmt.Errorf("id is required")
	}
	if ex.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !ex.MuscleGroup.Valid() {
		return fmt.Errorf("invalid muscle group %q", ex.MuscleGroup)
	}
	if len(ex.Equipment) == 0 {
		return fmt.Errorf("equipment is required")
	}
	for _, eq := range ex.Equipment {
		if !eq.Valid() {
			return fmt.Errorf("invalid equipment %q", eq)
		}
	}
	return nil
}

// All returns every exercise in declaration order.
func (c *Catalog) All() []models.Exercise {
	out := make([]models.Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

// Len returns the number of exercises.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// Get looks up an exercise by id.
func (c *Catalog) Get(id string) (models.Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Exercise{}, false
	}
	return c.exercises[i], true
}

// WithEquipment returns the exercises usable with any of the allowed equipment.
func (c *Catalog) WithEquipment(allowed []models.Equipment) []models.Exercise {
	var out []models.Exercise
	for _, ex := range c.exercises {
		if ex.Uses(allowed) {
			out = append(out, ex)
		}
	}
	return out
}

// ByMuscleGroup returns the exercises training the given muscle group.
func (c *Catalog) ByMuscleGroup(mg models.MuscleGroup) []models.Exercise {
	var out []models.Exercise
	for _, ex := range c.exercises {
		if ex.MuscleGroup == mg {
			out = append(out, ex)
		}
	}
	return out
}

// Merge returns a new catalog with the user's custom exercises appended.
// Custom exercises never shadow an existing id; clashing entries are skipped.
func (c *Catalog) Merge(custom []models.Exercise) *Catalog {
	out := &Catalog{
		exercises: make([]models.Exercise, len(c.exercises), len(c.exercises)+len(custom)),
		byID:      make(map[string]int, len(c.exercises)+len(custom)),
	}
	copy(out.exercises, c.exercises)
	for id, i := range c.byID {
		out.byID[id] = i
	}
	for _, ex := range custom {
		if _, dup := out.byID[ex.ID]; dup {
			continue
		}
		ex.IsCustom = true
		out.byID[ex.ID] = len(out.exercises)
		out.exercises = append(out.exercises, ex)
	}
	return out
}
