package countdown

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manual returns a countdown whose real ticker never fires during a test,
// so ticks are driven through tick() directly.
func manual(t *testing.T, total int, completed *int32) *Countdown {
	t.Helper()

	c, err := New(Config{
		Total:    total,
		Interval: time.Hour,
		OnComplete: func(Snapshot) {
			atomic.AddInt32(completed, 1)
		},
	})
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	return c
}

func (c *Countdown) currentGeneration() uint64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.generation
}

func TestNewInvalidTotal(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Total: 0})
	assert.Error(t, err)
}

func TestRunToZero(t *testing.T) {
	t.Parallel()

	var completed int32
	c := manual(t, 3, &completed)
	require.True(t, c.Start(context.Background()))

	gen := c.currentGeneration()
	assert.True(t, c.tick(gen))
	assert.True(t, c.tick(gen))
	assert.False(t, c.tick(gen))

	s := c.Snapshot()
	assert.Equal(t, 0, s.Remaining)
	assert.Equal(t, StateExpired, s.State)
	assert.Equal(t, int32(1), atomic.LoadInt32(&completed))

	// ticks after expiry are dropped
	assert.False(t, c.tick(gen))
	assert.False(t, c.tick(c.currentGeneration()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&completed))
	assert.False(t, c.Start(context.Background()), "expired countdown cannot start")
}

func TestStaleTickAfterPause(t *testing.T) {
	t.Parallel()

	var completed int32
	c := manual(t, 2, &completed)
	require.True(t, c.Start(context.Background()))
	gen := c.currentGeneration()

	require.True(t, c.Pause())
	assert.False(t, c.tick(gen))
	assert.Equal(t, 2, c.Snapshot().Remaining)
	assert.Equal(t, StatePaused, c.Snapshot().State)

	require.True(t, c.Start(context.Background()))
	assert.False(t, c.tick(gen), "tick from previous run must be ignored")
	assert.True(t, c.tick(c.currentGeneration()))
	assert.Equal(t, 1, c.Snapshot().Remaining)
}

func TestResetFromAnyState(t *testing.T) {
	t.Parallel()

	var completed int32
	c := manual(t, 2, &completed)

	c.Reset()
	assert.Equal(t, Snapshot{Remaining: 2, Total: 2, State: StateIdle}, c.Snapshot())

	require.True(t, c.Start(context.Background()))
	gen := c.currentGeneration()
	c.tick(gen)
	c.Reset()
	assert.Equal(t, Snapshot{Remaining: 2, Total: 2, State: StateIdle}, c.Snapshot())
	assert.False(t, c.tick(gen))

	require.True(t, c.Start(context.Background()))
	gen = c.currentGeneration()
	c.tick(gen)
	c.tick(gen)
	require.Equal(t, StateExpired, c.Snapshot().State)
	c.Reset()
	assert.Equal(t, Snapshot{Remaining: 2, Total: 2, State: StateIdle}, c.Snapshot())
	assert.Equal(t, int32(1), atomic.LoadInt32(&completed))
}

func TestInvalidTransitionsAreNoops(t *testing.T) {
	t.Parallel()

	var completed int32
	c := manual(t, 5, &completed)

	assert.False(t, c.Pause(), "idle countdown cannot pause")
	require.True(t, c.Start(context.Background()))
	assert.False(t, c.Start(context.Background()), "running countdown cannot start again")
	assert.Equal(t, StateRunning, c.Snapshot().State)
}

func TestConfigure(t *testing.T) {
	t.Parallel()

	var completed int32
	c := manual(t, 5, &completed)
	require.True(t, c.Start(context.Background()))
	gen := c.currentGeneration()
	c.tick(gen)

	require.NoError(t, c.Configure(60))
	assert.Equal(t, Snapshot{Remaining: 60, Total: 60, State: StateIdle}, c.Snapshot())
	assert.False(t, c.tick(gen))

	assert.Error(t, c.Configure(0))
}

func TestToggle(t *testing.T) {
	t.Parallel()

	var completed int32
	c := manual(t, 5, &completed)
	ctx := context.Background()

	require.True(t, c.Toggle(ctx))
	assert.Equal(t, StateRunning, c.Snapshot().State)
	require.True(t, c.Toggle(ctx))
	assert.Equal(t, StatePaused, c.Snapshot().State)
	require.True(t, c.Toggle(ctx))
	assert.Equal(t, StateRunning, c.Snapshot().State)
}

func TestRealTimeExpiry(t *testing.T) {
	t.Parallel()

	var (
		mtx       sync.Mutex
		ticks     []int
		completed int32
	)

	c, err := New(Config{
		Total:    3,
		Interval: 5 * time.Millisecond,
		OnTick: func(s Snapshot) {
			mtx.Lock()
			defer mtx.Unlock()
			ticks = append(ticks, s.Remaining)
		},
		OnComplete: func(Snapshot) {
			atomic.AddInt32(&completed, 1)
		},
	})
	require.NoError(t, err)
	require.True(t, c.Start(context.Background()))

	require.Eventually(t, func() bool {
		return c.Snapshot().State == StateExpired
	}, time.Second, time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&completed))

	mtx.Lock()
	defer mtx.Unlock()
	assert.Equal(t, []int{2, 1, 0}, ticks)
}

func TestRealTimePauseHoldsTime(t *testing.T) {
	t.Parallel()

	var completed int32
	c, err := New(Config{
		Total:    1000,
		Interval: 2 * time.Millisecond,
		OnComplete: func(Snapshot) {
			atomic.AddInt32(&completed, 1)
		},
	})
	require.NoError(t, err)
	require.True(t, c.Start(context.Background()))

	require.Eventually(t, func() bool {
		return c.Snapshot().Remaining < 1000
	}, time.Second, time.Millisecond)

	require.True(t, c.Pause())
	paused := c.Snapshot().Remaining
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, paused, c.Snapshot().Remaining)
	assert.Equal(t, int32(0), atomic.LoadInt32(&completed))
}

func TestRealTimeResetCancelsCompletion(t *testing.T) {
	t.Parallel()

	var completed int32
	c, err := New(Config{
		Total:    2,
		Interval: 20 * time.Millisecond,
		OnComplete: func(Snapshot) {
			atomic.AddInt32(&completed, 1)
		},
	})
	require.NoError(t, err)
	require.True(t, c.Start(context.Background()))

	c.Reset()
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&completed))
	assert.Equal(t, Snapshot{Remaining: 2, Total: 2, State: StateIdle}, c.Snapshot())
}

func TestContextCancelStopsTicking(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	c, err := New(Config{Total: 1000, Interval: 2 * time.Millisecond})
	require.NoError(t, err)
	require.True(t, c.Start(ctx))

	cancel()
	require.Eventually(t, func() bool {
		return c.Snapshot().State == StatePaused
	}, time.Second, time.Millisecond)

	remaining := c.Snapshot().Remaining
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, remaining, c.Snapshot().Remaining)

	require.True(t, c.Start(context.Background()), "cancelled run can be resumed")
	t.Cleanup(c.Stop)
	require.Eventually(t, func() bool {
		return c.Snapshot().Remaining < remaining
	}, time.Second, time.Millisecond)
}

func TestResetDuringFinalTickSuppressesCompletion(t *testing.T) {
	t.Parallel()

	var completed int32
	entered := make(chan struct{})
	release := make(chan struct{})

	c, err := New(Config{
		Total:    1,
		Interval: time.Hour,
		OnTick: func(Snapshot) {
			close(entered)
			<-release
		},
		OnComplete: func(Snapshot) {
			atomic.AddInt32(&completed, 1)
		},
	})
	require.NoError(t, err)
	t.Cleanup(c.Stop)
	require.True(t, c.Start(context.Background()))

	gen := c.currentGeneration()
	tickDone := make(chan bool, 1)
	go func() {
		tickDone <- c.tick(gen)
	}()

	<-entered
	c.Reset()
	close(release)

	assert.False(t, <-tickDone)
	assert.Equal(t, int32(0), atomic.LoadInt32(&completed))
	assert.Equal(t, Snapshot{Remaining: 1, Total: 1, State: StateIdle}, c.Snapshot())
}

func TestSnapshotPresentation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		remaining int
		format    string
		level     Level
	}{
		{remaining: 180, format: "3:00", level: LevelNormal},
		{remaining: 30, format: "0:30", level: LevelNormal},
		{remaining: 29, format: "0:29", level: LevelWarning},
		{remaining: 10, format: "0:10", level: LevelWarning},
		{remaining: 9, format: "0:09", level: LevelCritical},
		{remaining: 0, format: "0:00", level: LevelCritical},
		{remaining: 125, format: "2:05", level: LevelNormal},
	}

	for _, tc := range testCases {
		s := Snapshot{Remaining: tc.remaining, Total: 180}
		assert.Equal(t, tc.format, s.Format())
		assert.Equal(t, tc.level, s.Level(), "remaining %d", tc.remaining)
	}

	assert.InDelta(t, 0.5, Snapshot{Remaining: 90, Total: 180}.Progress(), 1e-9)
	assert.Equal(t, 0.0, Snapshot{}.Progress())
}
