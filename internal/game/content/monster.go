// Package content defines the static zone, monster, and skill tables and
// their procedural population from YAML specs.
package content

import "fmt"

// MonsterTemplate defines a spawnable monster. Immutable after table
// construction.
type MonsterTemplate struct {
	ID        string
	Name      string
	Level     int
	MaxHP     int
	MinDamage int
	MaxDamage int
	XP        int
	// Archetype is the visual model tag consumed by the render boundary.
	Archetype string
	// Color is a cosmetic hex color; randomized per run.
	Color string
	Boss  bool
}

// Validate checks the template invariants.
//
// Postcondition: returns nil iff level >= 1, maxHP >= 1, and
// 1 <= minDamage <= maxDamage.
func (t *MonsterTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("monster template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("monster template %q: name must not be empty", t.ID)
	}
	if t.Level < 1 {
		return fmt.Errorf("monster template %q: level must be >= 1", t.ID)
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("monster template %q: max_hp must be >= 1", t.ID)
	}
	if t.MinDamage < 1 || t.MinDamage > t.MaxDamage {
		return fmt.Errorf("monster template %q: damage range [%d, %d] is invalid",
			t.ID, t.MinDamage, t.MaxDamage)
	}
	return nil
}

// TutorialTemplate returns the fixed weak monster used while tutorial gating
// is active: 15 HP, 1-2 damage.
func TutorialTemplate() *MonsterTemplate {
	return &MonsterTemplate{
		ID:        "training_dummy",
		Name:      "Training Dummy",
		Level:     1,
		MaxHP:     15,
		MinDamage: 1,
		MaxDamage: 2,
		XP:        10,
		Archetype: "dummy",
		Color:     "#b5a642",
	}
}
