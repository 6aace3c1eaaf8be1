package improvbot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	historyModel "github.com/bloops-games/improv/internal/database/history/model"
	userModel "github.com/bloops-games/improv/internal/database/user/model"
	"github.com/bloops-games/improv/internal/improv/countdown"
	"github.com/bloops-games/improv/internal/improv/game"
	"github.com/bloops-games/improv/internal/improvbot/resource"
	"github.com/bloops-games/improv/internal/strpool"
	"github.com/bloops-games/improv/internal/util"
	"github.com/enescakir/emoji"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

const progressCells = 10

var markdownReplacer = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}

func renderScene(v game.View) string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	if v.Scene == nil {
		return resource.TextNoGameMsg
	}

	_, _ = fmt.Fprintf(buf, "%s *Scene %d*\n\n", emoji.Cinema.String(), v.SceneNumber)
	_, _ = fmt.Fprintf(buf, "%s *Location:* %s\n\n", emoji.CardIndex.String(), escapeMarkdown(v.Scene.Location))
	_, _ = fmt.Fprintf(buf, "%s *Characters:*\n", emoji.PeopleWithBunnyEars.String())
	for _, member := range v.Cast {
		_, _ = fmt.Fprintf(buf, "%s - %s\n", escapeMarkdown(member.Actor), escapeMarkdown(member.Character))
	}

	_, _ = fmt.Fprintf(buf, "\n%s *Conflict:* %s", emoji.Hammer.String(), escapeMarkdown(v.Scene.Conflict))
	if v.Scene.HasTwist() {
		_, _ = fmt.Fprintf(buf, "\n\n%s *Twist:* %s", emoji.GameDie.String(), escapeMarkdown(v.Scene.Twist))
	}

	return buf.String()
}

func levelMarker(s countdown.Snapshot) string {
	if s.State == countdown.StateExpired {
		return emoji.ChequeredFlag.String()
	}

	switch s.Level() {
	case countdown.LevelCritical:
		return emoji.Bomb.String()
	case countdown.LevelWarning:
		return emoji.Fire.String()
	default:
		return emoji.Stopwatch.String()
	}
}

func progressBar(progress float64) string {
	filled := int(progress*progressCells + 0.5)
	if filled > progressCells {
		filled = progressCells
	}

	if filled < 0 {
		filled = 0
	}

	return strings.Repeat("▓", filled) + strings.Repeat("░", progressCells-filled)
}

func renderTimer(s countdown.Snapshot) string {
	return levelMarker(s) + " " + s.Format() + " " + progressBar(s.Progress())
}

func timerMarkup(s countdown.Snapshot) tgbotapi.InlineKeyboardMarkup {
	toggle := resource.TimerResumeText
	if s.Active() {
		toggle = resource.TimerPauseText
	}

	row := tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(renderTimer(s), resource.TimerBtnData),
	)

	if s.State != countdown.StateExpired {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(toggle, resource.TimerToggleData))
	}

	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func renderProfile(u userModel.User, stat historyModel.ProfileStat) string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	_, _ = fmt.Fprintf(buf, resource.TextProfileHeader, escapeMarkdown(u.FirstName))
	buf.WriteString(emoji.VideoGame.String())
	buf.WriteString(" Played: ")
	buf.WriteString(util.Count(stat.Scenes, "scene", "scenes"))
	buf.WriteString("\n")
	buf.WriteString(emoji.ChequeredFlag.String())
	buf.WriteString(" Played to the end: ")
	buf.WriteString(strconv.Itoa(stat.Completed))
	buf.WriteString("\n")
	buf.WriteString(emoji.GameDie.String())
	buf.WriteString(" Twists thrown: ")
	buf.WriteString(strconv.Itoa(stat.Twists))
	buf.WriteString("\n")
	buf.WriteString(emoji.Stopwatch.String())
	buf.WriteString(" On stage: ")
	buf.WriteString(stat.Performed.Round(time.Second).String())
	buf.WriteString("\n")
	buf.WriteString(emoji.Trophy.String())
	buf.WriteString(" Longest scene: ")
	buf.WriteString(stat.LongestScene.Round(time.Second).String())

	if stat.LastLocation != "" {
		buf.WriteString("\n")
		buf.WriteString(emoji.Cinema.String())
		buf.WriteString(" Last location: ")
		buf.WriteString(escapeMarkdown(stat.LastLocation))
	}

	return buf.String()
}
