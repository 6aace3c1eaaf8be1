package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bloops-games/improv/internal/improv/countdown"
	"github.com/bloops-games/improv/internal/improv/scene"
	"github.com/bloops-games/improv/internal/logging"
	"github.com/bloops-games/improv/internal/metrics"
)

type StateKind uint8

const (
	StateKindMenu StateKind = iota + 1
	StateKindPlaying
)

// Listener is notified about everything a front end has to render.
type Listener interface {
	SceneChanged(view View)
	TimerTicked(view View)
	TimerCompleted(view View)
}

// CastMember pairs an actor with the character drawn for them.
type CastMember struct {
	Actor     string
	Character string
}

type View struct {
	State       StateKind
	Scene       *scene.Scene
	Cast        []CastMember
	Timer       countdown.Snapshot
	CanTwist    bool
	SceneNumber int
}

type Config struct {
	Catalog  scene.Catalog
	Interval time.Duration
	Listener Listener

	// DoneFn is called with the finished scene when it is replaced or discarded.
	DoneFn func(record Record)
}

// Record describes one played scene.
type Record struct {
	Scene     scene.Scene
	Actors    []string
	Duration  int
	Remaining int
	Expired   bool
	StartedAt time.Time
	EndedAt   time.Time
}

func NewSession(ctx context.Context, config Config) *Session {
	return &Session{
		ctx:    ctx,
		config: config,
		state:  StateKindMenu,
	}
}

// Session is the single owner of the current scene and its timer.
type Session struct {
	mtx sync.RWMutex

	ctx    context.Context
	config Config

	state       StateKind
	settings    Settings
	scene       *scene.Scene
	twistThrown bool
	sceneNumber int
	startedAt   time.Time
	timer       *countdown.Countdown
	lastActive  time.Time
}

// Start validates the settings, draws the first scene and starts the timer.
func (s *Session) Start(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.config.Catalog.Validate(); err != nil {
		return err
	}

	if settings.ActorCount > s.config.Catalog.MaxActors() {
		return fmt.Errorf(
			"%w: %d actors requested, catalog has %d distinct characters",
			scene.ErrConfiguration,
			settings.ActorCount,
			s.config.Catalog.MaxActors(),
		)
	}

	timer, err := countdown.New(countdown.Config{
		Total:      settings.Duration,
		Interval:   s.config.Interval,
		OnTick:     s.onTick,
		OnComplete: s.onComplete,
	})
	if err != nil {
		return fmt.Errorf("new countdown: %w", err)
	}

	s.mtx.Lock()
	prev := s.timer
	record, hasRecord := s.recordLocked()
	s.settings = Settings{
		ActorCount: settings.ActorCount,
		Duration:   settings.Duration,
		ActorNames: append([]string(nil), settings.ActorNames[:settings.ActorCount]...),
	}
	s.timer = timer
	s.state = StateKindPlaying
	s.mtx.Unlock()

	if prev != nil {
		prev.Stop()
	}

	if hasRecord {
		s.done(record)
	}

	return s.nextScene(false)
}

// NewScene replaces the current scene and restarts the timer from the full duration.
func (s *Session) NewScene() error {
	if s.State() != StateKindPlaying {
		return nil
	}

	return s.nextScene(true)
}

func (s *Session) nextScene(report bool) error {
	logger := logging.FromContext(s.ctx).Named("game.Session.nextScene")

	s.mtx.Lock()
	if s.state != StateKindPlaying {
		s.mtx.Unlock()
		return nil
	}

	generated, err := scene.Generate(s.config.Catalog, s.settings.ActorCount)
	if err != nil {
		s.mtx.Unlock()
		return fmt.Errorf("generate scene: %w", err)
	}

	var (
		record    Record
		hasRecord bool
	)
	if report {
		record, hasRecord = s.recordLocked()
	}

	s.scene = &generated
	s.twistThrown = false
	s.sceneNumber++
	number := s.sceneNumber
	s.startedAt = time.Now()
	s.lastActive = s.startedAt

	// restarted under s.mtx so a concurrent Exit stops the new run
	s.timer.Reset()
	s.timer.Start(s.ctx)
	s.mtx.Unlock()

	metrics.ScenesGenerated.Inc()
	logger.Infof("Scene %d generated at %s", number, generated.Location)

	if hasRecord {
		s.done(record)
	}

	s.notify(func(l Listener, v View) { l.SceneChanged(v) })

	return nil
}

// ThrowTwist adds a twist to the current scene once. It reports whether a
// twist was thrown; without a scene or after a twist it does nothing.
func (s *Session) ThrowTwist() bool {
	s.mtx.Lock()
	if s.scene == nil || s.twistThrown {
		s.mtx.Unlock()
		return false
	}

	s.scene = scene.TriggerTwist(s.scene, s.config.Catalog)
	s.twistThrown = true
	s.lastActive = time.Now()
	s.mtx.Unlock()

	metrics.TwistsThrown.Inc()
	s.notify(func(l Listener, v View) { l.SceneChanged(v) })

	return true
}

// TogglePause pauses a running timer and resumes a paused or idle one.
func (s *Session) TogglePause() bool {
	var toggled bool
	ok := s.withActiveTimer(func(timer *countdown.Countdown) {
		toggled = timer.Toggle(s.ctx)
	})

	return ok && toggled
}

// ResetTimer puts the timer back to the full duration and leaves it idle.
func (s *Session) ResetTimer() bool {
	if !s.withActiveTimer((*countdown.Countdown).Reset) {
		return false
	}

	s.notify(func(l Listener, v View) { l.TimerTicked(v) })

	return true
}

// Exit discards the scene and returns to the menu.
func (s *Session) Exit() {
	s.mtx.Lock()
	record, hasRecord := s.recordLocked()
	timer := s.timer
	s.timer = nil
	s.scene = nil
	s.twistThrown = false
	s.state = StateKindMenu
	s.mtx.Unlock()

	if timer != nil {
		timer.Stop()
	}

	if hasRecord {
		s.done(record)
	}
}

func (s *Session) State() StateKind {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.state
}

func (s *Session) Settings() Settings {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.settings
}

// LastActive is the time of the last scene change or twist.
func (s *Session) LastActive() time.Time {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.lastActive
}

func (s *Session) View() View {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		State:       s.state,
		CanTwist:    s.scene != nil && !s.twistThrown,
		SceneNumber: s.sceneNumber,
	}

	if s.timer != nil {
		v.Timer = s.timer.Snapshot()
	}

	if s.scene != nil {
		sc := *s.scene
		sc.Characters = append([]string(nil), s.scene.Characters...)
		v.Scene = &sc
		v.Cast = make([]CastMember, len(sc.Characters))
		for i, character := range sc.Characters {
			v.Cast[i] = CastMember{Character: character}
			if i < len(s.settings.ActorNames) {
				v.Cast[i].Actor = s.settings.ActorNames[i]
			}
		}
	}

	return v
}

// withActiveTimer runs fn on the current timer while holding the session
// lock, so Exit can not stop the timer between the check and fn.
func (s *Session) withActiveTimer(fn func(timer *countdown.Countdown)) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.state != StateKindPlaying || s.timer == nil {
		return false
	}
	s.lastActive = time.Now()
	fn(s.timer)

	return true
}

func (s *Session) recordLocked() (Record, bool) {
	if s.scene == nil || s.timer == nil {
		return Record{}, false
	}

	snapshot := s.timer.Snapshot()

	return Record{
		Scene:     *s.scene,
		Actors:    append([]string(nil), s.settings.ActorNames...),
		Duration:  snapshot.Total,
		Remaining: snapshot.Remaining,
		Expired:   snapshot.State == countdown.StateExpired,
		StartedAt: s.startedAt,
		EndedAt:   time.Now(),
	}, true
}

func (s *Session) done(record Record) {
	if s.config.DoneFn != nil {
		s.config.DoneFn(record)
	}
}

func (s *Session) onTick(countdown.Snapshot) {
	s.notify(func(l Listener, v View) { l.TimerTicked(v) })
}

func (s *Session) onComplete(countdown.Snapshot) {
	logger := logging.FromContext(s.ctx).Named("game.Session.onComplete")
	metrics.TimersExpired.Inc()
	logger.Infof("Scene timer expired")
	s.notify(func(l Listener, v View) { l.TimerCompleted(v) })
}

func (s *Session) notify(fn func(l Listener, v View)) {
	if s.config.Listener == nil {
		return
	}

	fn(s.config.Listener, s.View())
}
