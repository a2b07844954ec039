package combat

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
	"github.com/cory-johannsen/idlerpg/internal/game/content"
	"github.com/cory-johannsen/idlerpg/internal/game/dice"
	"github.com/cory-johannsen/idlerpg/internal/game/item"
	"github.com/cory-johannsen/idlerpg/internal/game/progress"
	"github.com/cory-johannsen/idlerpg/internal/game/stats"
)

const (
	// skillProcChance is the per-eligible-skill chance to use it this tick.
	skillProcChance = 0.3
	// executeThreshold is the target HP fraction at or below which
	// execute-class skills become eligible.
	executeThreshold = 0.2
	// slowSkipChance is the chance a slowed monster skips its action.
	slowSkipChance = 0.5
	// rageOnAction and rageOnHit are the warrior resource gains per player
	// action and per hit taken.
	rageOnAction = 5
	rageOnHit    = 3
	// rageDecayIdle is the per-tick rage decay while no encounter is live.
	rageDecayIdle = 1
	// hpRegenPerStamina and manaRegenPerIntellect scale passive regeneration.
	hpRegenPerStamina = 0.2
	// narrativeCap bounds the retained narrative log.
	narrativeCap = 100
)

// Options tunes engine policies.
type Options struct {
	// AutoEquip routes drops through score comparison instead of the
	// inventory.
	AutoEquip bool
	// EnhancedLoot enables the intellect-redistribution loot transform.
	EnhancedLoot bool
	// InventoryCap overrides the default inventory capacity when > 0.
	InventoryCap int
}

// Engine owns the character/equipment/inventory aggregate and resolves one
// combat exchange per tick. All exported methods serialize on one mutex, so
// the tick scheduler and UI-driven operations never interleave partial
// mutations.
type Engine struct {
	mu sync.Mutex

	char   *character.Character
	eq     *item.Equipment
	inv    *item.Inventory
	tables *content.Tables
	src    dice.Source
	gen    *item.Generator
	ledger *progress.Ledger
	log    *zap.Logger
	cues   CueSink
	opts   Options

	zoneID string
	enc    *Encounter

	// tick is the monotonic tick counter used for skill cooldowns.
	tick uint64
	// cooldowns maps skill ID to the tick at which it is next ready.
	cooldowns map[string]uint64

	playerAttacked  bool
	monsterAttacked bool

	narrative []string
}

// NewEngine assembles an Engine over a fresh or restored aggregate.
//
// Precondition: char, eq, inv, tables, src, and log must be non-nil; cues may
// be nil (cues are discarded). zoneID must name a zone in tables; an unknown
// zone falls back to the first zone.
func NewEngine(char *character.Character, eq *item.Equipment, inv *item.Inventory, tables *content.Tables, src dice.Source, log *zap.Logger, cues CueSink, zoneID string, opts Options) *Engine {
	if cues == nil {
		cues = nopCueSink{}
	}
	if tables.ZoneByID(zoneID) == nil {
		zoneID = tables.Zones[0].ID
	}

	e := &Engine{
		char:      char,
		eq:        eq,
		inv:       inv,
		tables:    tables,
		src:       src,
		gen:       item.NewGenerator(src),
		log:       log,
		cues:      cues,
		opts:      opts,
		zoneID:    zoneID,
		cooldowns: make(map[string]uint64),
	}
	e.ledger = progress.NewLedger(char, eq, tables, src, log, e.addNarrative)

	d := stats.Derive(char, eq)
	char.SetMaxPools(d.MaxHP, d.MaxMana)
	return e
}

// Tick resolves one simulation step: passive regeneration, spawning, one
// player action, one monster action, and terminal conditions. All mutations
// within the tick are applied atomically with respect to other Engine
// methods.
//
// Postcondition: 0 <= HP <= MaxHP, 0 <= Mana <= MaxMana, 0 <= Rage <= 100.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tick++
	d := stats.Derive(e.char, e.eq)
	e.char.SetMaxPools(d.MaxHP, d.MaxMana)

	e.regen(d)

	if e.enc == nil {
		e.spawn()
		return
	}

	e.playerAction(d)

	if !e.enc.Dead() {
		e.monsterAction(d)
	}

	// Terminal conditions: the player's action resolved first, so a monster
	// killed this tick never triggers the defeat branch.
	switch {
	case e.enc.Dead():
		e.resolveKill()
	case e.char.HP <= 0:
		e.resolveDefeat()
	}
}

// regen applies passive per-tick regeneration and idle rage decay.
func (e *Engine) regen(d stats.Derived) {
	e.char.Heal(float64(d.Stamina) * hpRegenPerStamina)

	if factor := e.char.Class.ManaRegenFactor(); factor > 0 {
		e.char.GainMana(float64(d.Intellect) * factor)
	}
	if e.char.Class.UsesRage() && e.enc == nil {
		e.char.DecayRage(rageDecayIdle)
	}
}

// spawn creates the next encounter: the tutorial template while gating is
// active, otherwise a uniformly random template from the current zone pool.
func (e *Engine) spawn() {
	tmpl := e.tables.Tutorial
	if !e.ledger.TutorialActive() {
		zone := e.tables.ZoneByID(e.zoneID)
		tmpl = dice.Pick(e.src, zone.Pool)
	}
	e.enc = newEncounter(tmpl)

	line := fmt.Sprintf("A %s appears.", tmpl.Name)
	if tmpl.Boss {
		line = fmt.Sprintf("The ground shakes. %s appears!", tmpl.Name)
		e.cues.Play(CueGong)
	}
	e.addNarrative(line)
}

// playerAction resolves the player's attack: base damage, an optional skill
// proc, then the crit multiplier.
func (e *Engine) playerAction(d stats.Derived) {
	minDmg := d.AttackPower / 4
	maxDmg := d.AttackPower / 2
	if minDmg < 1 {
		minDmg = 1
	}
	if maxDmg < minDmg {
		maxDmg = minDmg
	}
	damage := float64(dice.Between(e.src, minDmg, maxDmg))

	cue := CueAttack
	if skill, rank := e.procSkill(); skill != nil {
		damage *= skill.RankMultiplier(rank)
		e.applySkillEffect(skill)
		cue = CueCast
		if skill.Effect == content.EffectExecute {
			cue = CueExecute
		}
		e.addNarrative(fmt.Sprintf("You unleash %s (rank %d)!", skill.Name, rank))
	}

	if dice.Chance(e.src, d.CritChance) {
		damage *= d.CritDamage
		e.addNarrative("Critical hit!")
	}

	final := int(damage)
	e.enc.HP -= final
	e.playerAttacked = true
	e.cues.Play(cue)

	if e.char.Class.UsesRage() {
		e.char.GainRage(rageOnAction)
	}

	e.addNarrative(fmt.Sprintf("You hit %s for %d.", e.enc.Template.Name, final))
}

// procSkill scans learned skills in stable ID order and returns the first
// eligible skill that passes the proc roll, deducting its resource cost.
//
// Eligibility: learned, off cooldown, resource-affordable, and (for
// execute-class skills) target at or below the execute threshold.
func (e *Engine) procSkill() (*content.SkillDef, int) {
	for _, def := range e.tables.SkillsForClass(string(e.char.Class)) {
		rank, learned := e.char.Skills[def.ID]
		if !learned || rank < 1 {
			continue
		}
		if e.cooldowns[def.ID] > e.tick {
			continue
		}
		if def.Effect == content.EffectExecute && e.enc.HPFraction() > executeThreshold {
			continue
		}
		if !e.canAfford(def) {
			continue
		}
		if !dice.Chance(e.src, skillProcChance) {
			continue
		}
		e.payCost(def)
		e.cooldowns[def.ID] = e.tick + uint64(def.CooldownTicks)
		return def, rank
	}
	return nil, 0
}

// canAfford reports whether the character can pay the skill's resource cost.
func (e *Engine) canAfford(def *content.SkillDef) bool {
	switch def.CostType {
	case content.CostRage:
		return e.char.Rage >= def.Cost
	case content.CostManaPercent:
		return e.char.Mana >= def.Cost/100*float64(e.char.MaxMana)
	}
	return false
}

// payCost deducts the skill's resource cost.
//
// Precondition: canAfford(def) just returned true.
func (e *Engine) payCost(def *content.SkillDef) {
	switch def.CostType {
	case content.CostRage:
		e.char.SpendRage(def.Cost)
	case content.CostManaPercent:
		e.char.SpendMana(def.Cost / 100 * float64(e.char.MaxMana))
	}
}

// applySkillEffect applies a skill's secondary effect to the encounter.
func (e *Engine) applySkillEffect(def *content.SkillDef) {
	if def.Effect == content.EffectSlow {
		e.enc.Slowed = true
		e.addNarrative(fmt.Sprintf("%s is slowed.", e.enc.Template.Name))
	}
}

// monsterAction resolves the monster's attack against the player.
func (e *Engine) monsterAction(d stats.Derived) {
	if e.enc.Slowed && dice.Chance(e.src, slowSkipChance) {
		e.addNarrative(fmt.Sprintf("%s staggers and misses its turn.", e.enc.Template.Name))
		return
	}

	tmpl := e.enc.Template
	damage := dice.Between(e.src, tmpl.MinDamage, tmpl.MaxDamage)

	if dice.Chance(e.src, d.DodgeChance) {
		e.addNarrative(fmt.Sprintf("You dodge %s's attack.", tmpl.Name))
		return
	}

	e.char.TakeDamage(damage)
	e.monsterAttacked = true
	e.cues.Play(CueHit)

	if e.char.Class.UsesRage() {
		e.char.GainRage(rageOnHit)
	}

	e.addNarrative(fmt.Sprintf("%s hits you for %d.", tmpl.Name, damage))
}

// resolveKill applies kill rewards, rolls loot, and returns to the idle
// state.
func (e *Engine) resolveKill() {
	tmpl := e.enc.Template
	e.cues.Play(CueDeath)

	reward := e.ledger.OnKill(tmpl)
	if reward.Levels > 0 {
		e.cues.Play(CueLevelUp)
	}

	drop := e.gen.Roll(tmpl.Level, item.RollOpts{Enhanced: e.opts.EnhancedLoot})
	if drop != nil {
		e.routeDrop(drop)
	}

	e.enc = nil
}

// routeDrop sends a dropped item through auto-loot disposition and narrates
// the outcome.
func (e *Engine) routeDrop(drop *item.Item) {
	d := item.Dispose(drop, e.eq, e.inv, e.opts.AutoEquip, e.char.Level)
	e.char.Currency += d.Credit
	e.cues.Play(CueLoot)

	switch d.Outcome {
	case item.OutcomeEquipped:
		e.addNarrative(fmt.Sprintf("You equip %s.", drop))
		if d.Displaced != nil {
			e.addNarrative(fmt.Sprintf("Sold %s for %s.", d.Displaced.Name, dice.FormatCoins(d.Credit)))
		}
		derived := stats.Derive(e.char, e.eq)
		e.char.SetMaxPools(derived.MaxHP, derived.MaxMana)
	case item.OutcomeSalvaged:
		e.addNarrative(fmt.Sprintf("Salvaged %s for %s.", drop.Name, dice.FormatCoins(d.Credit)))
	case item.OutcomeStashed:
		e.addNarrative(fmt.Sprintf("%s goes into your bag.", drop.Name))
	case item.OutcomeDiscarded:
		e.addNarrative(fmt.Sprintf("Your bag is full. %s is lost.", drop.Name))
	}
}

// resolveDefeat applies the defeat policy and returns to the idle state.
func (e *Engine) resolveDefeat() {
	e.cues.Play(CueDeath)
	result := e.ledger.OnDefeat(e.zoneID)
	if result.ZoneID != e.zoneID {
		e.zoneID = result.ZoneID
		zone := e.tables.ZoneByID(e.zoneID)
		e.addNarrative(fmt.Sprintf("You retreat to %s.", zone.Name))
	}
	e.enc = nil
}

// addNarrative appends a line to the bounded narrative log and mirrors it at
// debug level.
func (e *Engine) addNarrative(line string) {
	e.narrative = append(e.narrative, line)
	if len(e.narrative) > narrativeCap {
		e.narrative = e.narrative[len(e.narrative)-narrativeCap:]
	}
	e.log.Debug("narrative", zap.String("line", line))
}

// Narrative returns a copy of the retained narrative log, oldest first.
func (e *Engine) Narrative() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.narrative))
	copy(out, e.narrative)
	return out
}
