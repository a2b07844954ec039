package content

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/idlerpg/internal/game/dice"
)

//go:embed defaults/zones.yaml
var defaultZonesYAML []byte

//go:embed defaults/skills.yaml
var defaultSkillsYAML []byte

// zonesFile is the YAML document shape for zone specs.
type zonesFile struct {
	Zones []*ZoneSpec `yaml:"zones"`
}

// skillsFile is the YAML document shape for skill definitions.
type skillsFile struct {
	Skills []*SkillDef `yaml:"skills"`
}

// Tables aggregates all static content. Constructed once at startup and
// passed by reference into the simulation components; never a process-wide
// global.
type Tables struct {
	// Zones is the ordered zone sequence; defeat regression walks it
	// backwards.
	Zones []*Zone
	// Tutorial is the fixed template used while tutorial gating is active.
	Tutorial *MonsterTemplate

	skillsByClass map[string][]*SkillDef
	skillsByID    map[string]*SkillDef
}

// BuildTables parses zone specs and skill definitions from raw YAML and
// generates the zone pools using src.
//
// Postcondition: returns fully validated Tables or an error naming the first
// violation; skills per class are sorted by ID for a stable scan order.
func BuildTables(zonesYAML, skillsYAML []byte, src dice.Source) (*Tables, error) {
	var zf zonesFile
	if err := yaml.Unmarshal(zonesYAML, &zf); err != nil {
		return nil, fmt.Errorf("parsing zones YAML: %w", err)
	}
	if len(zf.Zones) == 0 {
		return nil, fmt.Errorf("zones YAML defines no zones")
	}

	var sf skillsFile
	if err := yaml.Unmarshal(skillsYAML, &sf); err != nil {
		return nil, fmt.Errorf("parsing skills YAML: %w", err)
	}

	t := &Tables{
		Tutorial:      TutorialTemplate(),
		skillsByClass: make(map[string][]*SkillDef),
		skillsByID:    make(map[string]*SkillDef),
	}

	for _, spec := range zf.Zones {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		zone := BuildZone(spec, src)
		for _, tmpl := range zone.Pool {
			if err := tmpl.Validate(); err != nil {
				return nil, fmt.Errorf("zone %q: %w", zone.ID, err)
			}
		}
		t.Zones = append(t.Zones, zone)
	}

	for _, def := range sf.Skills {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := t.skillsByID[def.ID]; dup {
			return nil, fmt.Errorf("skill %q: duplicate id", def.ID)
		}
		t.skillsByID[def.ID] = def
		t.skillsByClass[def.Class] = append(t.skillsByClass[def.Class], def)
	}
	for class := range t.skillsByClass {
		defs := t.skillsByClass[class]
		sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	}

	return t, nil
}

// DefaultTables builds Tables from the embedded default content.
func DefaultTables(src dice.Source) (*Tables, error) {
	return BuildTables(defaultZonesYAML, defaultSkillsYAML, src)
}

// LoadTables builds Tables from YAML files on disk, falling back to the
// embedded defaults for any empty path.
func LoadTables(zonesPath, skillsPath string, src dice.Source) (*Tables, error) {
	zonesYAML := defaultZonesYAML
	if zonesPath != "" {
		data, err := os.ReadFile(zonesPath)
		if err != nil {
			return nil, fmt.Errorf("reading zones file %q: %w", zonesPath, err)
		}
		zonesYAML = data
	}

	skillsYAML := defaultSkillsYAML
	if skillsPath != "" {
		data, err := os.ReadFile(skillsPath)
		if err != nil {
			return nil, fmt.Errorf("reading skills file %q: %w", skillsPath, err)
		}
		skillsYAML = data
	}

	return BuildTables(zonesYAML, skillsYAML, src)
}

// ZoneByID returns the zone with the given ID, or nil.
func (t *Tables) ZoneByID(id string) *Zone {
	for _, z := range t.Zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// ZoneIndex returns the position of the zone with the given ID, or -1.
func (t *Tables) ZoneIndex(id string) int {
	for i, z := range t.Zones {
		if z.ID == id {
			return i
		}
	}
	return -1
}

// SkillsForClass returns the class's skills sorted by ID. The slice is
// shared; callers must not mutate it.
func (t *Tables) SkillsForClass(class string) []*SkillDef {
	return t.skillsByClass[class]
}

// SkillByID returns the skill definition for id, or nil.
func (t *Tables) SkillByID(id string) *SkillDef {
	return t.skillsByID[id]
}
