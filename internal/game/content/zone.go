package content

import (
	"fmt"

	"github.com/cory-johannsen/idlerpg/internal/game/dice"
)

// Zone is a static level band with an ordered pool of monster templates.
type Zone struct {
	ID       string
	Name     string
	MinLevel int
	MaxLevel int
	Pool     []*MonsterTemplate
}

// Fragments holds the name fragments used to compose monster names for a
// zone.
type Fragments struct {
	Prefixes []string `yaml:"prefixes"`
	Nouns    []string `yaml:"nouns"`
}

// ZoneSpec is the YAML-authored recipe a Zone's monster pool is generated
// from.
type ZoneSpec struct {
	ID string `yaml:"id"`
	// Name is the zone display name.
	Name string `yaml:"name"`
	// MinLevel and MaxLevel are the inclusive level band.
	MinLevel int `yaml:"min_level"`
	MaxLevel int `yaml:"max_level"`
	// Count is the number of monsters generated for the pool.
	Count int `yaml:"count"`
	// Archetype is the visual model tag shared by the pool.
	Archetype string `yaml:"archetype"`
	// BossPrefix is prepended to boss monster names.
	BossPrefix string    `yaml:"boss_prefix"`
	Fragments  Fragments `yaml:"fragments"`
}

// Validate checks the spec invariants.
//
// Postcondition: returns nil iff the level band is ordered, count >= 3 (the
// pool must fit both boss placements), and fragments are non-empty.
func (s *ZoneSpec) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("zone spec: id must not be empty")
	}
	if s.Name == "" {
		return fmt.Errorf("zone spec %q: name must not be empty", s.ID)
	}
	if s.MinLevel < 1 || s.MinLevel > s.MaxLevel {
		return fmt.Errorf("zone spec %q: level band [%d, %d] is invalid", s.ID, s.MinLevel, s.MaxLevel)
	}
	if s.Count < 3 {
		return fmt.Errorf("zone spec %q: count must be >= 3, got %d", s.ID, s.Count)
	}
	if len(s.Fragments.Prefixes) == 0 || len(s.Fragments.Nouns) == 0 {
		return fmt.Errorf("zone spec %q: fragments must have prefixes and nouns", s.ID)
	}
	return nil
}

// BuildZone populates a Zone from its spec. The structure is deterministic:
// pool size, level band, and boss placement (last and middle entries) are
// identical across runs; per-monster level jitter and color are random.
//
// Precondition: spec must have passed Validate; src must be non-nil.
// Postcondition: len(zone.Pool) == spec.Count; every template validates;
// Pool[count-1] and Pool[count/2] are bosses.
func BuildZone(spec *ZoneSpec, src dice.Source) *Zone {
	zone := &Zone{
		ID:       spec.ID,
		Name:     spec.Name,
		MinLevel: spec.MinLevel,
		MaxLevel: spec.MaxLevel,
		Pool:     make([]*MonsterTemplate, 0, spec.Count),
	}

	for i := 0; i < spec.Count; i++ {
		boss := i == spec.Count-1 || i == spec.Count/2
		level := dice.Between(src, spec.MinLevel, spec.MaxLevel)
		if boss {
			level = spec.MaxLevel
		}

		name := dice.Pick(src, spec.Fragments.Prefixes) + " " + dice.Pick(src, spec.Fragments.Nouns)
		if boss {
			prefix := spec.BossPrefix
			if prefix == "" {
				prefix = "Elder"
			}
			name = prefix + " " + dice.Pick(src, spec.Fragments.Nouns)
		}

		tmpl := &MonsterTemplate{
			ID:        fmt.Sprintf("%s_%d", spec.ID, i),
			Name:      name,
			Level:     level,
			MaxHP:     level*12 + dice.Between(src, 0, level*3),
			MinDamage: max(1, level),
			MaxDamage: level * 2,
			XP:        level * 10,
			Archetype: spec.Archetype,
			Color:     randomColor(src),
			Boss:      boss,
		}
		zone.Pool = append(zone.Pool, tmpl)
	}
	return zone
}

// Contains reports whether level falls inside the zone's inclusive band.
func (z *Zone) Contains(level int) bool {
	return level >= z.MinLevel && level <= z.MaxLevel
}

// randomColor returns a random "#rrggbb" hex color.
func randomColor(src dice.Source) string {
	return fmt.Sprintf("#%02x%02x%02x", src.Intn(256), src.Intn(256), src.Intn(256))
}
