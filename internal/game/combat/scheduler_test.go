package combat

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
)

func (e *Engine) tickCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tick
}

func TestScheduler_TicksAndShutdownSave(t *testing.T) {
	c := character.New("scheduled")
	c.Speed = 10 // 100ms ticks keep the test fast
	eng, _ := newTestEngine(t, 101, c, Options{})

	var saves atomic.Int32
	sched := NewScheduler(eng, func(context.Context) { saves.Add(1) }, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return eng.tickCount() >= 3 },
		2*time.Second, 10*time.Millisecond, "ticks must fire at the configured rate")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
	assert.Equal(t, int32(1), saves.Load(), "shutdown triggers one final save")
}

func TestScheduler_PauseStopsTicks(t *testing.T) {
	c := character.New("frozen")
	c.Speed = 10
	eng, _ := newTestEngine(t, 103, c, Options{})

	sched := NewScheduler(eng, nil, 0, nil)
	sched.Pause()
	require.True(t, sched.Paused())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	time.Sleep(400 * time.Millisecond)
	assert.Zero(t, eng.tickCount(), "no ticks while paused, none queued")

	sched.Resume()
	require.Eventually(t, func() bool { return eng.tickCount() > 0 },
		2*time.Second, 10*time.Millisecond, "ticks resume after unpause")

	cancel()
	<-done
}
