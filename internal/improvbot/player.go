package improvbot

import (
	"context"
	"fmt"
	"sync"

	"github.com/bloops-games/improv/internal/improv/countdown"
	"github.com/bloops-games/improv/internal/improv/game"
	"github.com/bloops-games/improv/internal/improvbot/builder"
	"github.com/bloops-games/improv/internal/improvbot/resource"
	"github.com/bloops-games/improv/internal/logging"
	"github.com/enescakir/emoji"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

var _ game.Listener = (*player)(nil)

func newPlayer(ctx context.Context, tg builder.Sender, chatID, userID int64) *player {
	return &player{
		tg:     tg,
		chatID: chatID,
		userID: userID,
		logger: logging.FromContext(ctx).Named("improvbot.player"),
	}
}

// player renders one chat's game: the scene card and the live timer message.
type player struct {
	mtx sync.Mutex

	tg      builder.Sender
	chatID  int64
	userID  int64
	session *game.Session
	logger  *zap.SugaredLogger

	sceneNumber    int
	sceneMessageID int
	timerMessageID int
}

func (p *player) SceneChanged(v game.View) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if v.SceneNumber == p.sceneNumber && p.sceneMessageID != 0 {
		msg := tgbotapi.NewEditMessageText(p.chatID, p.sceneMessageID, renderScene(v))
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := p.tg.Send(msg); err != nil {
			p.logger.Errorf("edit scene msg: %v", err)
		}

		return
	}

	msg := tgbotapi.NewMessage(p.chatID, renderScene(v))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = resource.PlayingButtons
	output, err := p.tg.Send(msg)
	if err != nil {
		p.logger.Errorf("send scene msg: %v", err)
		return
	}

	p.sceneNumber = v.SceneNumber
	p.sceneMessageID = output.MessageID

	timer := tgbotapi.NewMessage(p.chatID, fmt.Sprintf("%s Scene %d timer", emoji.Stopwatch.String(), v.SceneNumber))
	timer.ReplyMarkup = timerMarkup(v.Timer)
	output, err = p.tg.Send(timer)
	if err != nil {
		p.logger.Errorf("send timer msg: %v", err)
		return
	}

	p.timerMessageID = output.MessageID
}

func (p *player) TimerTicked(v game.View) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.editTimerLocked(v)
}

func (p *player) TimerCompleted(v game.View) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.editTimerLocked(v)

	msg := tgbotapi.NewMessage(p.chatID, resource.TextTimeUpMsg)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := p.tg.Send(msg); err != nil {
		p.logger.Errorf("send time up msg: %v", err)
	}
}

// editTimerLocked skips views of a scene whose messages were not sent yet.
func (p *player) editTimerLocked(v game.View) {
	if v.SceneNumber != p.sceneNumber || p.timerMessageID == 0 {
		return
	}

	msg := tgbotapi.NewEditMessageReplyMarkup(p.chatID, p.timerMessageID, timerMarkup(v.Timer))
	if _, err := p.tg.Send(msg); err != nil {
		p.logger.Errorf("edit timer msg: %v", err)
	}
}

func (p *player) newScene() error {
	if err := p.session.NewScene(); err != nil {
		return fmt.Errorf("new scene: %w", err)
	}

	return nil
}

func (p *player) throwTwist() error {
	if p.session.ThrowTwist() {
		return nil
	}

	if _, err := p.tg.Send(tgbotapi.NewMessage(p.chatID, resource.TextTwistUsedMsg)); err != nil {
		return fmt.Errorf("send msg: %w", err)
	}

	return nil
}

// togglePause flips the timer and redraws its buttons.
func (p *player) togglePause() countdown.Snapshot {
	p.session.TogglePause()
	v := p.session.View()
	p.TimerTicked(v)

	return v.Timer
}

func (p *player) resetTimer() {
	p.session.ResetTimer()
}

func (p *player) exit() {
	p.session.Exit()
}

func (p *player) executeCbQuery(query *tgbotapi.CallbackQuery) error {
	var answer string
	switch query.Data {
	case resource.TimerToggleData:
		snapshot := p.togglePause()
		switch snapshot.State {
		case countdown.StateRunning:
			answer = resource.TextTimerResumedAnswer
		case countdown.StateExpired:
			answer = resource.TextTimerExpiredAnswer
		default:
			answer = resource.TextTimerPausedAnswer
		}
	case resource.TimerBtnData:
		answer = renderTimer(p.session.View().Timer)
	default:
		answer = resource.TextUnknownCallbackAnswer
	}

	if _, err := p.tg.AnswerCallbackQuery(tgbotapi.NewCallback(query.ID, answer)); err != nil {
		return fmt.Errorf("send answer msg: %w", err)
	}

	return nil
}
