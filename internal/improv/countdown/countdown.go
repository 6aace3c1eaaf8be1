package countdown

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	DefaultInterval = 1 * time.Second

	warningThreshold  = 30
	criticalThreshold = 10
)

type State uint8

const (
	StateIdle State = iota + 1
	StatePaused
	StateRunning
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

type Level uint8

const (
	LevelNormal Level = iota
	LevelWarning
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Snapshot is an immutable view of the countdown at one moment.
type Snapshot struct {
	Remaining int
	Total     int
	State     State
}

func (s Snapshot) Active() bool {
	return s.State == StateRunning
}

func (s Snapshot) Level() Level {
	switch {
	case s.Remaining < criticalThreshold:
		return LevelCritical
	case s.Remaining < warningThreshold:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// Format renders the remaining time as m:ss.
func (s Snapshot) Format() string {
	return fmt.Sprintf("%d:%02d", s.Remaining/60, s.Remaining%60)
}

func (s Snapshot) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}

	return float64(s.Remaining) / float64(s.Total)
}

type Config struct {
	Total    int
	Interval time.Duration

	// OnTick is called after every decrement, OnComplete once per run to zero.
	// Both are called without internal locks held.
	OnTick     func(Snapshot)
	OnComplete func(Snapshot)
}

func New(config Config) (*Countdown, error) {
	if config.Total <= 0 {
		return nil, fmt.Errorf("countdown total must be positive, got %d", config.Total)
	}

	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}

	return &Countdown{
		total:      config.Total,
		remaining:  config.Total,
		state:      StateIdle,
		interval:   config.Interval,
		onTick:     config.OnTick,
		onComplete: config.OnComplete,
	}, nil
}

// Countdown ticks once per interval while running. Every run owns a cancel
// func and a generation number; pausing, resetting or reconfiguring cancels
// the run and bumps the generation, so a tick already in flight is dropped.
type Countdown struct {
	mtx sync.Mutex

	total     int
	remaining int
	state     State
	interval  time.Duration

	generation uint64
	cancel     func()
	done       chan struct{}

	onTick     func(Snapshot)
	onComplete func(Snapshot)
}

func (c *Countdown) Snapshot() Snapshot {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.snapshot()
}

func (c *Countdown) snapshot() Snapshot {
	return Snapshot{Remaining: c.remaining, Total: c.total, State: c.state}
}

// Start moves Idle or Paused to Running. It reports false when the
// countdown is already running, expired or has no time left.
func (c *Countdown) Start(ctx context.Context) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.state != StateIdle && c.state != StatePaused {
		return false
	}

	if c.remaining <= 0 {
		return false
	}

	c.state = StateRunning
	c.generation++

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	go c.run(runCtx, c.generation, done)

	return true
}

// Pause moves Running to Paused.
func (c *Countdown) Pause() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.state != StateRunning {
		return false
	}

	c.stopLocked()
	c.state = StatePaused

	return true
}

// Toggle pauses a running countdown and starts any other one.
func (c *Countdown) Toggle(ctx context.Context) bool {
	if c.Pause() {
		return true
	}

	return c.Start(ctx)
}

// Reset returns to Idle with the full configured time.
func (c *Countdown) Reset() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.stopLocked()
	c.remaining = c.total
	c.state = StateIdle
}

// Configure sets a new total and re-seeds the remaining time. The countdown
// always lands in Idle; callers restart it if they want it running.
func (c *Countdown) Configure(total int) error {
	if total <= 0 {
		return fmt.Errorf("countdown total must be positive, got %d", total)
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.stopLocked()
	c.total = total
	c.remaining = total
	c.state = StateIdle

	return nil
}

// Stop cancels any pending tick without changing remaining time or state
// other than leaving Running. It waits for the ticking goroutine to exit.
func (c *Countdown) Stop() {
	c.mtx.Lock()
	done := c.done
	if c.state == StateRunning {
		c.state = StatePaused
	}
	c.stopLocked()
	c.mtx.Unlock()

	if done != nil {
		<-done
	}
}

func (c *Countdown) stopLocked() {
	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.done = nil
}

func (c *Countdown) run(ctx context.Context, generation uint64, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.mtx.Lock()
			if generation == c.generation && c.state == StateRunning {
				c.state = StatePaused
				c.cancel = nil
				c.done = nil
			}
			c.mtx.Unlock()
			return
		case <-ticker.C:
			if !c.tick(generation) {
				return
			}
		}
	}
}

// tick applies one decrement for the given run and reports whether the run
// should keep ticking.
func (c *Countdown) tick(generation uint64) bool {
	c.mtx.Lock()
	if generation != c.generation || c.state != StateRunning {
		c.mtx.Unlock()
		return false
	}

	c.remaining--
	expired := c.remaining <= 0
	if expired {
		c.remaining = 0
		c.state = StateExpired
		c.generation++
		if c.cancel != nil {
			c.cancel()
			c.cancel = nil
		}
	}

	snapshot := c.snapshot()
	expiredGeneration := c.generation
	onTick, onComplete := c.onTick, c.onComplete
	c.mtx.Unlock()

	if onTick != nil {
		onTick(snapshot)
	}

	if expired && onComplete != nil && c.stillExpired(expiredGeneration) {
		onComplete(snapshot)
	}

	return !expired
}

// stillExpired reports whether nothing reset or reconfigured the countdown
// since it expired at the given generation.
func (c *Countdown) stillExpired(generation uint64) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return generation == c.generation && c.state == StateExpired
}
