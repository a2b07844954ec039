package combat

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	baseTickPeriod          = time.Second
	defaultAutosaveInterval = 5 * time.Second
)

// Scheduler drives the engine's tick loop and periodic autosave. The tick
// period is re-read from the engine after every tick, so speed changes take
// effect on the next tick without restarting the loop.
type Scheduler struct {
	engine   *Engine
	save     func(ctx context.Context)
	autosave time.Duration
	log      *zap.Logger

	paused atomic.Bool
}

// NewScheduler wires the engine to a save function. save is called on the
// autosave interval and once more on shutdown; it may be nil. A non-positive
// autosave interval uses the default.
func NewScheduler(engine *Engine, save func(ctx context.Context), autosave time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if save == nil {
		save = func(context.Context) {}
	}
	if autosave <= 0 {
		autosave = defaultAutosaveInterval
	}
	return &Scheduler{engine: engine, save: save, autosave: autosave, log: logger}
}

// Pause stops ticks from firing. Ticks elapsed while paused are dropped, not
// queued. Autosave keeps running.
func (s *Scheduler) Pause() {
	s.paused.Store(true)
}

// Resume restarts ticking from the current state.
func (s *Scheduler) Resume() {
	s.paused.Store(false)
}

// Paused reports whether the simulation is paused.
func (s *Scheduler) Paused() bool {
	return s.paused.Load()
}

// Run blocks until ctx is canceled, ticking the engine and autosaving. A
// final save runs on the way out so shutdown never loses more than one tick
// of progress.
//
// Invariant: engine.Tick is never invoked concurrently; Run is the only
// caller.
func (s *Scheduler) Run(ctx context.Context) {
	tick := time.NewTimer(s.period())
	defer tick.Stop()

	autosave := time.NewTicker(s.autosave)
	defer autosave.Stop()

	s.log.Info("scheduler started",
		zap.Duration("tick_period", s.period()),
		zap.Duration("autosave_interval", s.autosave))

	for {
		select {
		case <-ctx.Done():
			s.save(context.WithoutCancel(ctx))
			s.log.Info("scheduler stopped")
			return

		case <-tick.C:
			if !s.paused.Load() {
				s.engine.Tick()
			}
			tick.Reset(s.period())

		case <-autosave.C:
			s.save(ctx)
		}
	}
}

// period derives the live tick period from the engine's speed multiplier.
func (s *Scheduler) period() time.Duration {
	speed := s.engine.Speed()
	if speed < 1 {
		speed = 1
	}
	return baseTickPeriod / time.Duration(speed)
}
