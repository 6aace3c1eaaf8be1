package improvbot

import (
	"strings"
	"testing"
	"time"

	historyModel "github.com/bloops-games/improv/internal/database/history/model"
	userModel "github.com/bloops-games/improv/internal/database/user/model"
	"github.com/bloops-games/improv/internal/improv/countdown"
	"github.com/bloops-games/improv/internal/improv/game"
	"github.com/bloops-games/improv/internal/improv/scene"
	"github.com/bloops-games/improv/internal/improvbot/resource"
	"github.com/enescakir/emoji"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		progress float64
		expected string
	}{
		{name: "full", progress: 1, expected: "▓▓▓▓▓▓▓▓▓▓"},
		{name: "half", progress: 0.5, expected: "▓▓▓▓▓░░░░░"},
		{name: "empty", progress: 0, expected: "░░░░░░░░░░"},
		{name: "overflow", progress: 1.7, expected: "▓▓▓▓▓▓▓▓▓▓"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, progressBar(tc.progress))
		})
	}
}

func TestLevelMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, emoji.Stopwatch.String(), levelMarker(countdown.Snapshot{Remaining: 30, Total: 60, State: countdown.StateRunning}))
	assert.Equal(t, emoji.Fire.String(), levelMarker(countdown.Snapshot{Remaining: 29, Total: 60, State: countdown.StateRunning}))
	assert.Equal(t, emoji.Bomb.String(), levelMarker(countdown.Snapshot{Remaining: 9, Total: 60, State: countdown.StateRunning}))
	assert.Equal(t, emoji.ChequeredFlag.String(), levelMarker(countdown.Snapshot{Remaining: 0, Total: 60, State: countdown.StateExpired}))
}

func TestTimerMarkup(t *testing.T) {
	t.Parallel()

	running := timerMarkup(countdown.Snapshot{Remaining: 125, Total: 180, State: countdown.StateRunning})
	require.Len(t, running.InlineKeyboard, 1)
	require.Len(t, running.InlineKeyboard[0], 2)
	assert.Contains(t, running.InlineKeyboard[0][0].Text, "2:05")
	assert.Equal(t, resource.TimerPauseText, running.InlineKeyboard[0][1].Text)

	paused := timerMarkup(countdown.Snapshot{Remaining: 125, Total: 180, State: countdown.StatePaused})
	assert.Equal(t, resource.TimerResumeText, paused.InlineKeyboard[0][1].Text)

	expired := timerMarkup(countdown.Snapshot{Remaining: 0, Total: 180, State: countdown.StateExpired})
	assert.Len(t, expired.InlineKeyboard[0], 1)
}

func TestRenderScene(t *testing.T) {
	t.Parallel()

	v := game.View{
		State:       game.StateKindPlaying,
		SceneNumber: 2,
		Scene: &scene.Scene{
			Location:   "Space_station",
			Characters: []string{"Pirate", "Chef"},
			Conflict:   "Out of air",
			Twist:      "The captain is a robot",
		},
		Cast: []game.CastMember{
			{Actor: "Ann", Character: "Pirate"},
			{Actor: "*Bob*", Character: "Chef"},
		},
	}

	text := renderScene(v)
	assert.Contains(t, text, "Scene 2")
	assert.Contains(t, text, `Space\_station`)
	assert.Contains(t, text, "Ann - Pirate")
	assert.Contains(t, text, `\*Bob\* - Chef`)
	assert.Contains(t, text, "The captain is a robot")

	v.Scene.Twist = ""
	assert.NotContains(t, renderScene(v), "Twist")

	assert.Equal(t, resource.TextNoGameMsg, renderScene(game.View{}))
}

func TestRenderProfile(t *testing.T) {
	t.Parallel()

	text := renderProfile(userModel.User{FirstName: "Ann"}, historyModel.ProfileStat{
		Scenes:       3,
		Twists:       1,
		Completed:    2,
		Performed:    5 * time.Minute,
		LongestScene: 3 * time.Minute,
		LastLocation: "Kitchen",
	})

	assert.True(t, strings.Contains(text, "*Ann*"))
	assert.Contains(t, text, "3 scenes")
	assert.Contains(t, text, "5m0s")
	assert.Contains(t, text, "Kitchen")
}
