package builder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bloops-games/improv/internal/improv/game"
	"github.com/bloops-games/improv/internal/improvbot/resource"
	"github.com/bloops-games/improv/internal/logging"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// Sender is the part of the telegram api the bot talks through.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	AnswerCallbackQuery(config tgbotapi.CallbackConfig) (tgbotapi.APIResponse, error)
}

type QueryCallbackHandlerFunc func(query *tgbotapi.CallbackQuery) error

type stateKind uint8

const (
	stateKindActors stateKind = iota + 1
	stateKindDuration
	stateKindNames
	stateKindDone
)

var stages = []stateKind{
	stateKindActors,
	stateKindDuration,
	stateKindNames,
	stateKindDone,
}

func NewSession(
	tg Sender,
	chatID int64,
	authorID int64,
	doneFn func(session *Session) error,
	warnFn func(session *Session) error,
	timeout time.Duration,
) *Session {
	s := &Session{
		tg:              tg,
		state:           newStateMachine(stages...),
		messageCh:       make(chan struct{}, 1),
		ChatID:          chatID,
		AuthorID:        authorID,
		ActorCount:      game.DefaultActors,
		Duration:        game.DefaultDuration,
		timeout:         timeout,
		doneFn:          doneFn,
		warnFn:          warnFn,
		controlHandlers: map[string]QueryCallbackHandlerFunc{},
		actionHandlers:  map[stateKind]QueryCallbackHandlerFunc{},
		CreatedAt:       time.Now(),
	}

	s.handleControlCb(resource.BuilderInlineNextData, s.clickOnNext)
	s.handleControlCb(resource.BuilderInlinePrevData, s.clickOnPrev)
	s.handleControlCb(resource.BuilderInlineDoneData, s.clickOnDone)
	s.handleControlCb(resource.BuilderDefaultNameData, s.clickOnDefaultNames)

	s.handleActionCb(stateKindActors, s.clickOnActorCount)
	s.handleActionCb(stateKindDuration, s.clickOnDuration)

	return s
}

// Session walks the author through actor count, scene length and actor names.
type Session struct {
	mtx sync.RWMutex

	AuthorID   int64
	ChatID     int64
	ActorCount int
	Duration   int
	ActorNames []string
	CreatedAt  time.Time

	tg        Sender
	state     *stateMachine
	messageCh chan struct{}
	sema      sync.Once
	messageID int
	completed bool

	timeout         time.Duration
	controlHandlers map[string]QueryCallbackHandlerFunc
	actionHandlers  map[stateKind]QueryCallbackHandlerFunc
	cancel          func()
	doneFn          func(session *Session) error
	warnFn          func(session *Session) error
}

func (bs *Session) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, bs.timeout)
	logger := logging.FromContext(ctx)

	bs.mtx.Lock()
	bs.cancel = cancel
	bs.mtx.Unlock()

	bs.sema.Do(func() {
		go bs.loop(ctx)
		bs.render()
	})

	logger.Infof("Building session has started, author: %d", bs.AuthorID)
}

func (bs *Session) Stop() {
	bs.mtx.RLock()
	cancel := bs.cancel
	bs.mtx.RUnlock()

	if cancel != nil {
		cancel()
	}
}

// Settings returns the collected settings.
func (bs *Session) Settings() game.Settings {
	bs.mtx.RLock()
	defer bs.mtx.RUnlock()

	return bs.settingsLocked()
}

func (bs *Session) settingsLocked() game.Settings {
	names := make([]string, len(bs.ActorNames))
	copy(names, bs.ActorNames)

	return game.Settings{
		ActorCount: bs.ActorCount,
		Duration:   bs.Duration,
		ActorNames: names,
	}
}

func (bs *Session) Execute(upd tgbotapi.Update) error {
	bs.mtx.Lock()
	defer bs.mtx.Unlock()

	if upd.CallbackQuery != nil {
		if err := bs.executeCbQuery(upd.CallbackQuery); err != nil {
			return fmt.Errorf("execute cb query: %w", err)
		}
	}

	if upd.Message != nil {
		if err := bs.executeMessageQuery(upd.Message); err != nil {
			return fmt.Errorf("execute message query: %w", err)
		}
	}

	return nil
}

func (bs *Session) executeMessageQuery(query *tgbotapi.Message) error {
	if bs.state.curr() != stateKindNames {
		return nil
	}

	name := strings.TrimSpace(query.Text)
	if name == "" || len(bs.ActorNames) >= bs.ActorCount {
		return nil
	}

	bs.ActorNames = append(bs.ActorNames, name)
	msg := tgbotapi.NewMessage(bs.ChatID, fmt.Sprintf(resource.TextActorNameAnswer, len(bs.ActorNames), name))
	if _, err := bs.tg.Send(msg); err != nil {
		return fmt.Errorf("send msg: %w", err)
	}

	if len(bs.ActorNames) == bs.ActorCount {
		bs.state.next()
	}

	bs.render()

	return nil
}

func (bs *Session) handleControlCb(command string, fn QueryCallbackHandlerFunc) {
	bs.controlHandlers[command] = fn
}

func (bs *Session) handleActionCb(kind stateKind, fn QueryCallbackHandlerFunc) {
	bs.actionHandlers[kind] = fn
}

func (bs *Session) executeCbQuery(query *tgbotapi.CallbackQuery) error {
	if query.Message == nil || query.Message.MessageID != bs.messageID {
		return fmt.Errorf("callback with message id %d not found", bs.messageID)
	}

	if fn, ok := bs.controlHandlers[query.Data]; ok {
		if err := fn(query); err != nil {
			return fmt.Errorf("execute control handler: %w", err)
		}

		return nil
	}

	fn, ok := bs.actionHandlers[bs.state.curr()]
	if !ok {
		return fmt.Errorf("action handler not found")
	}

	if err := fn(query); err != nil {
		return fmt.Errorf("action handle: %w", err)
	}

	return nil
}

// render asks the loop to send the message for the current step.
func (bs *Session) render() {
	select {
	case bs.messageCh <- struct{}{}:
	default:
	}
}

func (bs *Session) loop(ctx context.Context) {
	logger := logging.FromContext(ctx).Named("builder.loop")
	defer bs.shutdown(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-bs.messageCh:
			bs.mtx.Lock()
			msg := bs.stepMessage()
			output, err := bs.tg.Send(msg)
			if err != nil {
				logger.Errorf("send step %d: %v", bs.state.curr(), err)
			} else {
				bs.messageID = output.MessageID
			}
			bs.mtx.Unlock()
		}
	}
}

func (bs *Session) stepMessage() tgbotapi.MessageConfig {
	var msg tgbotapi.MessageConfig
	switch bs.state.curr() {
	case stateKindActors:
		msg = tgbotapi.NewMessage(bs.ChatID, resource.TextChooseActorCount)
		msg.ReplyMarkup = bs.menuInlineButtons(bs.renderActorCounts())
	case stateKindDuration:
		msg = tgbotapi.NewMessage(bs.ChatID, resource.TextChooseDuration)
		msg.ReplyMarkup = bs.menuInlineButtons(bs.renderDurations())
	case stateKindNames:
		msg = tgbotapi.NewMessage(
			bs.ChatID,
			fmt.Sprintf(resource.TextEnterActorName, len(bs.ActorNames)+1, bs.ActorCount),
		)
		msg.ReplyMarkup = bs.menuInlineButtons(bs.renderDefaultNames())
	default:
		msg = tgbotapi.NewMessage(bs.ChatID, resource.TextConfigurationDone+"\n\n"+bs.renderSummary())
		msg.ReplyMarkup = bs.menuInlineButtons(tgbotapi.NewInlineKeyboardMarkup())
	}

	return msg
}

func (bs *Session) shutdown(ctx context.Context) {
	logger := logging.FromContext(ctx).Named("builder.shutdown")

	bs.mtx.RLock()
	completed := bs.completed
	bs.mtx.RUnlock()

	if completed {
		if err := bs.doneFn(bs); err != nil {
			logger.Errorf("done function: %v", err)
		}

		logger.Infof("Building session is complete, author: %d", bs.AuthorID)
		return
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		if _, err := bs.tg.Send(tgbotapi.NewMessage(bs.ChatID, resource.TextBuilderWarnMsg)); err != nil {
			logger.Errorf("send msg: %v", err)
		}
	}

	if err := bs.warnFn(bs); err != nil {
		logger.Errorf("warn function: %v", err)
	}

	logger.Infof("Building session is closed, author: %d", bs.AuthorID)
}

func (bs *Session) answer(query *tgbotapi.CallbackQuery, text string) error {
	if _, err := bs.tg.AnswerCallbackQuery(tgbotapi.NewCallback(query.ID, text)); err != nil {
		return fmt.Errorf("send answer msg: %w", err)
	}

	return nil
}

func (bs *Session) clickOnPrev(query *tgbotapi.CallbackQuery) error {
	if err := bs.answer(query, resource.BuilderInlinePrevText); err != nil {
		return err
	}

	if bs.state.prev() && bs.state.curr() == stateKindNames {
		bs.ActorNames = nil
	}

	bs.render()

	return nil
}

func (bs *Session) clickOnNext(query *tgbotapi.CallbackQuery) error {
	if bs.state.curr() == stateKindNames && len(bs.ActorNames) < bs.ActorCount {
		return bs.answer(query, resource.TextActorNamesRequired)
	}

	if err := bs.answer(query, resource.BuilderInlineNextText); err != nil {
		return err
	}

	bs.state.next()
	bs.render()

	return nil
}

func (bs *Session) clickOnDone(query *tgbotapi.CallbackQuery) error {
	if err := bs.answer(query, resource.BuilderInlineDoneText); err != nil {
		return err
	}

	if err := bs.settingsLocked().Validate(); err != nil {
		msg := tgbotapi.NewMessage(bs.ChatID, err.Error())
		if _, err := bs.tg.Send(msg); err != nil {
			return fmt.Errorf("send msg: %w", err)
		}

		bs.state.seek(stateKindNames)
		bs.ActorNames = nil
		bs.render()

		return nil
	}

	bs.completed = true
	bs.cancel()

	return nil
}

func (bs *Session) clickOnDefaultNames(query *tgbotapi.CallbackQuery) error {
	if bs.state.curr() != stateKindNames {
		return bs.answer(query, "")
	}

	if err := bs.answer(query, resource.TextDefaultNamesAnswer); err != nil {
		return err
	}

	defaults := game.DefaultActorNames(bs.ActorCount)
	bs.ActorNames = append(bs.ActorNames, defaults[len(bs.ActorNames):]...)
	bs.state.next()
	bs.render()

	return nil
}

func (bs *Session) clickOnActorCount(query *tgbotapi.CallbackQuery) error {
	n, err := strconv.Atoi(query.Data)
	if err != nil {
		return fmt.Errorf("strconv: %w", err)
	}

	if err := bs.answer(query, fmt.Sprintf(resource.TextActorCountAnswer, n)); err != nil {
		return err
	}

	bs.ActorCount = n
	if len(bs.ActorNames) > n {
		bs.ActorNames = bs.ActorNames[:n]
	}

	bs.state.next()
	bs.render()

	return nil
}

func (bs *Session) clickOnDuration(query *tgbotapi.CallbackQuery) error {
	n, err := strconv.Atoi(query.Data)
	if err != nil {
		return fmt.Errorf("strconv: %w", err)
	}

	if err := bs.answer(query, fmt.Sprintf(resource.TextDurationAnswer, formatSeconds(n))); err != nil {
		return err
	}

	bs.Duration = n
	bs.state.next()
	bs.render()

	return nil
}
