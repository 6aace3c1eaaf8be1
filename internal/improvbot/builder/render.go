package builder

import (
	"strconv"
	"strings"

	"github.com/bloops-games/improv/internal/improv/countdown"
	"github.com/bloops-games/improv/internal/improv/game"
	"github.com/bloops-games/improv/internal/improvbot/resource"
	"github.com/bloops-games/improv/internal/strpool"
	"github.com/enescakir/emoji"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

func formatSeconds(secs int) string {
	return countdown.Snapshot{Remaining: secs, Total: secs}.Format()
}

func (bs *Session) renderActorCounts() tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup()
	row := tgbotapi.NewInlineKeyboardRow()
	for _, n := range game.ActorCounts {
		text := strconv.Itoa(n)
		if n == bs.ActorCount {
			text = emoji.CheckMarkButton.String() + " " + text
		}

		row = append(row, tgbotapi.NewInlineKeyboardButtonData(text, strconv.Itoa(n)))
	}
	markup.InlineKeyboard = append(markup.InlineKeyboard, row)

	return markup
}

func (bs *Session) renderDurations() tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup()
	row := tgbotapi.NewInlineKeyboardRow()
	for _, n := range game.Durations {
		text := emoji.Stopwatch.String() + " " + formatSeconds(n)
		if n == bs.Duration {
			text = emoji.CheckMarkButton.String() + " " + formatSeconds(n)
		}

		row = append(row, tgbotapi.NewInlineKeyboardButtonData(text, strconv.Itoa(n)))
	}
	markup.InlineKeyboard = append(markup.InlineKeyboard, row)

	return markup
}

func (bs *Session) renderDefaultNames() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(resource.BuilderDefaultNameText, resource.BuilderDefaultNameData),
	))
}

func (bs *Session) renderSummary() string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	names := resource.TextBuilderNamesPending
	if len(bs.ActorNames) > 0 {
		names = strings.Join(bs.ActorNames, ", ")
	}

	buf.WriteString(emoji.PeopleWithBunnyEars.String())
	buf.WriteString(" ")
	buf.WriteString(strconv.Itoa(bs.ActorCount))
	buf.WriteString("\n")
	buf.WriteString(emoji.Stopwatch.String())
	buf.WriteString(" ")
	buf.WriteString(formatSeconds(bs.Duration))
	buf.WriteString("\n")
	buf.WriteString(emoji.Pen.String())
	buf.WriteString(" ")
	buf.WriteString(names)

	return buf.String()
}

func (bs *Session) menuInlineButtons(markup tgbotapi.InlineKeyboardMarkup) tgbotapi.InlineKeyboardMarkup {
	row := tgbotapi.NewInlineKeyboardRow()

	if !bs.state.isMin() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(resource.BuilderInlinePrevText, resource.BuilderInlinePrevData))
	}

	if !bs.state.isMax() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(resource.BuilderInlineNextText, resource.BuilderInlineNextData))
	} else {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(resource.BuilderInlineDoneText, resource.BuilderInlineDoneData))
	}

	markup.InlineKeyboard = append(markup.InlineKeyboard, row)

	return markup
}
