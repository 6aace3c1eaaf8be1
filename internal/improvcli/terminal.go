package improvcli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bloops-games/improv/internal/improv/game"
	"github.com/bloops-games/improv/internal/improv/scene"
	"github.com/bloops-games/improv/internal/logging"
	"github.com/bloops-games/improv/internal/metrics"
)

const frontendName = "cli"

var _ game.Listener = (*Terminal)(nil)

func New(r io.Reader, w io.Writer, catalog scene.Catalog, interval time.Duration) *Terminal {
	return &Terminal{
		in:       r,
		out:      w,
		catalog:  catalog,
		interval: interval,
	}
}

// Terminal plays the game over a line based reader and writer.
type Terminal struct {
	mtx sync.Mutex

	in       io.Reader
	out      io.Writer
	catalog  scene.Catalog
	interval time.Duration
}

func (t *Terminal) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("improvcli.Run")
	lines := t.readLines(ctx)

	for {
		settings, ok := t.askSettings(ctx, lines)
		if !ok {
			return nil
		}

		session := game.NewSession(ctx, game.Config{
			Catalog:  t.catalog,
			Interval: t.interval,
			Listener: t,
		})

		if err := session.Start(settings); err != nil {
			var validationErr *game.ValidationError
			if errors.As(err, &validationErr) {
				metrics.ValidationFailures.WithLabelValues(frontendName).Inc()
				t.println(validationErr.Message)
				continue
			}

			if errors.Is(err, scene.ErrConfiguration) {
				logger.Errorf("Start session: %v", err)
				t.println(fmt.Sprintf("The prompt catalog can cast at most %d actors", t.catalog.MaxActors()))
				continue
			}

			return fmt.Errorf("start session: %w", err)
		}

		logger.Debugf("Game started, actors: %d, duration: %d", settings.ActorCount, settings.Duration)
		t.print(helpText)

		if quit := t.play(ctx, session, lines); quit {
			return nil
		}
	}
}

// play executes commands until the game is left. It reports true when the
// input is exhausted or the context is done.
func (t *Terminal) play(ctx context.Context, session *game.Session, lines <-chan string) bool {
	defer session.Exit()

	for {
		select {
		case <-ctx.Done():
			return true
		case line, ok := <-lines:
			if !ok {
				return true
			}

			switch strings.ToLower(strings.TrimSpace(line)) {
			case "n":
				if err := session.NewScene(); err != nil {
					t.println(err.Error())
				}
			case "t":
				if !session.ThrowTwist() {
					t.println("The twist for this scene has already been thrown")
				}
			case "p":
				session.TogglePause()
				t.println(renderTimer(session.View().Timer))
			case "r":
				session.ResetTimer()
			case "q":
				t.println("Game over, back to the settings")
				return false
			case "":
			default:
				t.print(helpText)
			}
		}
	}
}

// askSettings prompts for actor count, scene length and names. An empty
// count or length takes the default.
func (t *Terminal) askSettings(ctx context.Context, lines <-chan string) (game.Settings, bool) {
	var settings game.Settings

	t.print(fmt.Sprintf("Number of actors (%d-%d) [%d]: ", game.MinActors, game.MaxActors, game.DefaultActors))
	line, ok := t.readLine(ctx, lines)
	if !ok {
		return settings, false
	}
	settings.ActorCount = parseInt(line, game.DefaultActors)

	t.print(fmt.Sprintf("Scene length in seconds [%d]: ", game.DefaultDuration))
	line, ok = t.readLine(ctx, lines)
	if !ok {
		return settings, false
	}
	settings.Duration = parseInt(line, game.DefaultDuration)

	if settings.ActorCount < game.MinActors || settings.ActorCount > game.MaxActors {
		return settings, true
	}

	for i := 0; i < settings.ActorCount; i++ {
		t.print(fmt.Sprintf("Name of actor %d: ", i+1))
		line, ok := t.readLine(ctx, lines)
		if !ok {
			return settings, false
		}

		settings.ActorNames = append(settings.ActorNames, strings.TrimSpace(line))
	}

	return settings, true
}

func parseInt(line string, fallback int) int {
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0
	}

	return n
}

func (t *Terminal) readLine(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return line, ok
	}
}

func (t *Terminal) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

func (t *Terminal) SceneChanged(v game.View) {
	t.print(renderCard(v))
}

func (t *Terminal) TimerTicked(v game.View) {
	t.println(renderTimer(v.Timer))
}

func (t *Terminal) TimerCompleted(game.View) {
	t.println("Time's up!")
}

func (t *Terminal) print(s string) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	_, _ = io.WriteString(t.out, s)
}

func (t *Terminal) println(s string) {
	t.print(s + "\n")
}
