package combat

// Cue is a named audio cue request emitted by the simulation.
type Cue string

const (
	CueAttack  Cue = "attack"
	CueHit     Cue = "hit"
	CueLevelUp Cue = "level_up"
	CueLoot    Cue = "loot"
	CueClick   Cue = "click"
	CueCast    Cue = "cast"
	CueExecute Cue = "execute"
	CueSell    Cue = "sell"
	CueDeath   Cue = "death"
	CueGong    Cue = "gong"
)

// CueSink receives audio cue requests. Implementations MUST NOT block; cues
// are fire-and-forget and a failed cue must never fail the tick.
type CueSink interface {
	Play(cue Cue)
}

// nopCueSink discards all cues.
type nopCueSink struct{}

func (nopCueSink) Play(Cue) {}
