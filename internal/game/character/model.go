// Package character defines the player character aggregate and its clamped
// mutation rules.
package character

// Attribute identifies one of the four primary character attributes.
type Attribute string

const (
	// Strength drives attack power.
	Strength Attribute = "strength"
	// Agility drives critical and dodge chance.
	Agility Attribute = "agility"
	// Intellect drives maximum mana and mana regeneration.
	Intellect Attribute = "intellect"
	// Stamina drives maximum health and health regeneration.
	Stamina Attribute = "stamina"
)

// AllAttributes lists every attribute in canonical order.
var AllAttributes = []Attribute{Strength, Agility, Intellect, Stamina}

// AttributeFloor is the minimum value any attribute may hold.
const AttributeFloor = 5

// Attributes holds the four primary attribute values for a character.
//
// Invariant: every field is >= AttributeFloor for a character created via New.
type Attributes struct {
	Strength  int
	Agility   int
	Intellect int
	Stamina   int
}

// Get returns the value for the given attribute, or 0 for an unknown one.
func (a Attributes) Get(attr Attribute) int {
	switch attr {
	case Strength:
		return a.Strength
	case Agility:
		return a.Agility
	case Intellect:
		return a.Intellect
	case Stamina:
		return a.Stamina
	}
	return 0
}

// Add adds delta to the given attribute, clamping the result to
// AttributeFloor.
//
// Postcondition: a.Get(attr) >= AttributeFloor.
func (a *Attributes) Add(attr Attribute, delta int) {
	set := func(v int) int {
		if v < AttributeFloor {
			return AttributeFloor
		}
		return v
	}
	switch attr {
	case Strength:
		a.Strength = set(a.Strength + delta)
	case Agility:
		a.Agility = set(a.Agility + delta)
	case Intellect:
		a.Intellect = set(a.Intellect + delta)
	case Stamina:
		a.Stamina = set(a.Stamina + delta)
	}
}

// Highest returns the attribute with the greatest value. Ties resolve in
// AllAttributes order.
func (a Attributes) Highest() Attribute {
	best := AllAttributes[0]
	for _, attr := range AllAttributes[1:] {
		if a.Get(attr) > a.Get(best) {
			best = attr
		}
	}
	return best
}

// Total returns the sum of all four attribute values.
func (a Attributes) Total() int {
	return a.Strength + a.Agility + a.Intellect + a.Stamina
}

// Class identifies a character class.
type Class string

const (
	// ClassUninitiated is the pre-choice class every character starts as.
	ClassUninitiated Class = "uninitiated"
	// ClassWarrior builds rage on attacks and when taking hits.
	ClassWarrior Class = "warrior"
	// ClassSorcerer casts from a mana pool regenerated by intellect.
	ClassSorcerer Class = "sorcerer"
	// ClassShadowblade is a melee caster spending the same mana pool.
	ClassShadowblade Class = "shadowblade"
)

// AllClasses lists every playable class, excluding ClassUninitiated.
var AllClasses = []Class{ClassWarrior, ClassSorcerer, ClassShadowblade}

// UsesRage reports whether the class spends and accumulates rage.
func (c Class) UsesRage() bool {
	return c == ClassWarrior
}

// UsesMana reports whether the class spends mana.
func (c Class) UsesMana() bool {
	return c == ClassSorcerer || c == ClassShadowblade
}

// ManaRegenFactor returns the per-tick mana regeneration multiplier applied
// to intellect. Zero for non-mana classes.
func (c Class) ManaRegenFactor() float64 {
	if c.UsesMana() {
		return 0.1
	}
	return 0
}

// Valid reports whether c is a recognized class identifier.
func (c Class) Valid() bool {
	switch c {
	case ClassUninitiated, ClassWarrior, ClassSorcerer, ClassShadowblade:
		return true
	}
	return false
}

// Reincarnation holds the optional prestige subsystem state. A nil pointer on
// Character means the subsystem is absent entirely.
type Reincarnation struct {
	// Count is the number of completed reincarnations.
	Count int `json:"count"`
	// FuryActive doubles all four effective attributes while set.
	FuryActive bool `json:"fury_active,omitempty"`
	// Model is the cosmetic model override earned by reincarnating; empty
	// means the class default.
	Model string `json:"model,omitempty"`
}

// Character represents a player character's full mutable state.
//
// Invariants (maintained by the mutators below, never checked after the fact):
//   - every attribute >= AttributeFloor
//   - 0 <= HP <= MaxHP and 0 <= Mana <= MaxMana
//   - 0 <= Rage <= 100
//   - Level >= 1 and XPToNext == Level * 100
type Character struct {
	Name  string
	Class Class

	Attributes      Attributes
	AttributePoints int
	Policy          AllocationPolicy

	HP      float64
	MaxHP   int
	Mana    float64
	MaxMana int
	Rage    float64

	Level    int
	XP       int
	XPToNext int

	SkillPoints int
	// Skills maps learned skill ID to rank (>= 1).
	Skills map[string]int

	Kills    int
	Currency int
	// Consumables maps consumable ID to held count.
	Consumables map[string]int

	// Speed is the game speed multiplier, bounded to [1, 10].
	Speed int

	Reincarnation *Reincarnation
}

// New creates a level-1 character with starting values.
//
// Postcondition: all invariants hold; HP and Mana are full.
func New(name string) *Character {
	return &Character{
		Name:  name,
		Class: ClassUninitiated,
		Attributes: Attributes{
			Strength:  AttributeFloor,
			Agility:   AttributeFloor,
			Intellect: AttributeFloor,
			Stamina:   AttributeFloor,
		},
		Policy:      PolicyManual,
		HP:          float64(AttributeFloor * 10),
		MaxHP:       AttributeFloor * 10,
		Mana:        float64(AttributeFloor * 10),
		MaxMana:     AttributeFloor * 10,
		Level:       1,
		XPToNext:    100,
		Skills:      make(map[string]int),
		Consumables: make(map[string]int),
		Speed:       1,
	}
}

// FuryActive reports whether the optional fury doubling is in effect.
func (c *Character) FuryActive() bool {
	return c.Reincarnation != nil && c.Reincarnation.FuryActive
}

// SetMaxPools updates the derived HP and mana ceilings and re-clamps the
// current pools against them.
//
// Precondition: maxHP >= 0 and maxMana >= 0.
// Postcondition: 0 <= HP <= MaxHP and 0 <= Mana <= MaxMana.
func (c *Character) SetMaxPools(maxHP, maxMana int) {
	c.MaxHP = maxHP
	c.MaxMana = maxMana
	c.HP = clamp(c.HP, 0, float64(maxHP))
	c.Mana = clamp(c.Mana, 0, float64(maxMana))
}

// Heal adds amount to HP, clamped to MaxHP.
//
// Precondition: amount >= 0.
func (c *Character) Heal(amount float64) {
	c.HP = clamp(c.HP+amount, 0, float64(c.MaxHP))
}

// HealFull restores HP to MaxHP.
func (c *Character) HealFull() {
	c.HP = float64(c.MaxHP)
}

// TakeDamage subtracts amount from HP, floored at 0.
//
// Precondition: amount >= 0.
// Postcondition: HP >= 0. Returns true when HP reached 0.
func (c *Character) TakeDamage(amount int) bool {
	c.HP = clamp(c.HP-float64(amount), 0, float64(c.MaxHP))
	return c.HP <= 0
}

// GainMana adds amount to Mana, clamped to MaxMana.
//
// Precondition: amount >= 0.
func (c *Character) GainMana(amount float64) {
	c.Mana = clamp(c.Mana+amount, 0, float64(c.MaxMana))
}

// SpendMana deducts amount from Mana if affordable.
//
// Postcondition: returns false and leaves Mana unchanged when amount > Mana.
func (c *Character) SpendMana(amount float64) bool {
	if amount > c.Mana {
		return false
	}
	c.Mana = clamp(c.Mana-amount, 0, float64(c.MaxMana))
	return true
}

// GainRage adds amount to Rage, clamped to [0, 100].
func (c *Character) GainRage(amount float64) {
	c.Rage = clamp(c.Rage+amount, 0, 100)
}

// SpendRage deducts amount from Rage if affordable.
//
// Postcondition: returns false and leaves Rage unchanged when amount > Rage.
func (c *Character) SpendRage(amount float64) bool {
	if amount > c.Rage {
		return false
	}
	c.Rage = clamp(c.Rage-amount, 0, 100)
	return true
}

// DecayRage reduces Rage by amount, floored at 0.
//
// Precondition: amount >= 0.
func (c *Character) DecayRage(amount float64) {
	c.Rage = clamp(c.Rage-amount, 0, 100)
}

// SetSpeed stores the game speed multiplier, clamped to [1, 10].
//
// Postcondition: 1 <= Speed <= 10.
func (c *Character) SetSpeed(speed int) {
	if speed < 1 {
		speed = 1
	}
	if speed > 10 {
		speed = 10
	}
	c.Speed = speed
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
