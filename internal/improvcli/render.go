package improvcli

import (
	"fmt"
	"strings"

	"github.com/bloops-games/improv/internal/improv/countdown"
	"github.com/bloops-games/improv/internal/improv/game"
	"github.com/bloops-games/improv/internal/strpool"
	"github.com/enescakir/emoji"
)

const (
	progressCells = 20

	helpText = "commands: [n] new scene  [t] twist  [p] pause/resume  [r] reset timer  [q] exit\n"
)

func renderCard(v game.View) string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	if v.Scene == nil {
		return ""
	}

	_, _ = fmt.Fprintf(buf, "\n%s Scene %d\n", emoji.Cinema.String(), v.SceneNumber)
	_, _ = fmt.Fprintf(buf, "  Location:  %s\n", v.Scene.Location)
	buf.WriteString("  Characters:\n")
	for _, member := range v.Cast {
		_, _ = fmt.Fprintf(buf, "    %s - %s\n", member.Actor, member.Character)
	}

	_, _ = fmt.Fprintf(buf, "  Conflict:  %s\n", v.Scene.Conflict)
	if v.Scene.HasTwist() {
		_, _ = fmt.Fprintf(buf, "  %s Twist:  %s\n", emoji.GameDie.String(), v.Scene.Twist)
	}

	return buf.String()
}

func renderTimer(s countdown.Snapshot) string {
	var marker string
	switch {
	case s.State == countdown.StateExpired:
		marker = "TIME"
	case s.Level() == countdown.LevelCritical:
		marker = "!!"
	case s.Level() == countdown.LevelWarning:
		marker = "!"
	}

	filled := int(s.Progress()*progressCells + 0.5)
	if filled > progressCells {
		filled = progressCells
	}

	return fmt.Sprintf(
		"%s %s [%s%s] %s %s",
		emoji.Stopwatch.String(),
		s.Format(),
		strings.Repeat("#", filled),
		strings.Repeat(".", progressCells-filled),
		s.State,
		marker,
	)
}
