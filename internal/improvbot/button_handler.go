package improvbot

import (
	"errors"
	"fmt"

	historyDb "github.com/bloops-games/improv/internal/database/history/database"
	userModel "github.com/bloops-games/improv/internal/database/user/model"
	"github.com/bloops-games/improv/internal/improv/game"
	"github.com/bloops-games/improv/internal/improvbot/builder"
	"github.com/bloops-games/improv/internal/improvbot/resource"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

func (m *manager) handleStartCommand(u userModel.User, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(resource.TextGreetingMsg, escapeMarkdown(u.FirstName)))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = resource.CommonButtons
	if _, err := m.tg.Send(msg); err != nil {
		return fmt.Errorf("send msg: %w", err)
	}

	return nil
}

func (m *manager) handleRulesButton(_ userModel.User, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, resource.TextRulesMsg)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := m.tg.Send(msg); err != nil {
		return fmt.Errorf("send msg: %w", err)
	}

	return nil
}

// handleProfileButton shows played scenes. Without a history store every
// profile is empty.
func (m *manager) handleProfileButton(u userModel.User, chatID int64) error {
	if m.historyDB == nil {
		return m.sendProfileEmpty(chatID)
	}

	stat, err := m.historyDB.FetchProfileStat(u.ID)
	if err != nil {
		if !errors.Is(err, historyDb.ErrNotFound) {
			return fmt.Errorf("fetch profile stat: %w", err)
		}

		return m.sendProfileEmpty(chatID)
	}

	msg := tgbotapi.NewMessage(chatID, renderProfile(u, stat))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := m.tg.Send(msg); err != nil {
		return fmt.Errorf("send msg: %w", err)
	}

	return nil
}

func (m *manager) sendProfileEmpty(chatID int64) error {
	if _, err := m.tg.Send(tgbotapi.NewMessage(chatID, resource.TextProfileEmptyMsg)); err != nil {
		return fmt.Errorf("send msg: %w", err)
	}

	return nil
}

func (m *manager) handleQuickStartButton(u userModel.User, chatID int64) error {
	m.resetUserSessions(u.ID)

	settings := game.DefaultSettings()
	if m.config.DefaultDuration > 0 {
		settings.Duration = m.config.DefaultDuration
	}

	return m.startGame(u.ID, chatID, settings)
}

func (m *manager) handleCustomButton(u userModel.User, chatID int64) error {
	m.resetUserSessions(u.ID)

	msg := tgbotapi.NewMessage(chatID, resource.TextSettingsMsg)
	msg.ReplyMarkup = resource.BuilderButtons
	if _, err := m.tg.Send(msg); err != nil {
		return fmt.Errorf("send msg: %w", err)
	}

	session := builder.NewSession(
		m.tg,
		chatID,
		u.ID,
		m.builderDoneFn,
		m.builderWarnFn,
		m.config.BuildingTimeout,
	)

	m.mtx.Lock()
	m.userBuildingSessions[u.ID] = session
	m.mtx.Unlock()

	session.Run(m.ctxSess)

	return nil
}

func (m *manager) handleButtonExit(u userModel.User, chatID int64) error {
	text := resource.TextNoGameMsg
	if m.resetUserSessions(u.ID) {
		text = resource.TextLeavingSessionsMsg
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = resource.CommonButtons
	if _, err := m.tg.Send(msg); err != nil {
		return fmt.Errorf("send msg: %w", err)
	}

	return nil
}
