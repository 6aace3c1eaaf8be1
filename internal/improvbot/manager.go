package improvbot

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	historyDb "github.com/bloops-games/improv/internal/database/history/database"
	historyModel "github.com/bloops-games/improv/internal/database/history/model"
	userDb "github.com/bloops-games/improv/internal/database/user/database"
	userModel "github.com/bloops-games/improv/internal/database/user/model"
	"github.com/bloops-games/improv/internal/improv/game"
	"github.com/bloops-games/improv/internal/improv/scene"
	"github.com/bloops-games/improv/internal/improvbot/builder"
	"github.com/bloops-games/improv/internal/improvbot/resource"
	"github.com/bloops-games/improv/internal/logging"
	"github.com/bloops-games/improv/internal/metrics"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"golang.org/x/sync/errgroup"
)

const frontendName = "telegram"

var ErrCommandNotFound = fmt.Errorf("command not found")

type botAPI interface {
	builder.Sender
	GetUpdatesChan(config tgbotapi.UpdateConfig) (tgbotapi.UpdatesChannel, error)
}

func NewManager(
	tg botAPI,
	config *Config,
	catalog scene.Catalog,
	userDB *userDb.DB,
	historyDB *historyDb.DB,
) *manager {
	return &manager{
		tg:                   tg,
		config:               config,
		catalog:              catalog,
		userBuildingSessions: map[int64]*builder.Session{},
		userPlayers:          map[int64]*player{},
		userDB:               userDB,
		historyDB:            historyDB,
		ctxSess:              context.Background(),
		cancelSess:           func() {},
	}
}

type manager struct {
	mtx sync.RWMutex

	tg      botAPI
	config  *Config
	catalog scene.Catalog

	// key: userID active building session
	userBuildingSessions map[int64]*builder.Session
	// key: userID active game
	userPlayers map[int64]*player

	userDB     *userDb.DB
	historyDB  *historyDb.DB
	ctxSess    context.Context
	cancelSess func()
}

func (m *manager) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("manager.Run")

	m.mtx.Lock()
	m.ctxSess, m.cancelSess = context.WithCancel(logging.WithLogger(context.Background(), logger))
	m.mtx.Unlock()

	upd := tgbotapi.NewUpdate(0)
	upd.Timeout = int(m.config.TgBotPollTimeout.Seconds())
	updates, err := m.tg.GetUpdatesChan(upd)
	if err != nil {
		return fmt.Errorf("tg get updates chan: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < runtime.NumCPU(); i++ {
		g.Go(func() error {
			m.pool(gctx, updates)
			return nil
		})
	}

	g.Go(func() error {
		m.cleaner(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("wait workers: %v", err)
	}

	m.shutdown(ctx)

	return nil
}

// shutdown closes every game so the played scenes reach the history.
func (m *manager) shutdown(ctx context.Context) {
	logger := logging.FromContext(ctx).Named("manager.shutdown")

	m.mtx.Lock()
	players := make([]*player, 0, len(m.userPlayers))
	for userID, p := range m.userPlayers {
		players = append(players, p)
		delete(m.userPlayers, userID)
	}

	builders := make([]*builder.Session, 0, len(m.userBuildingSessions))
	for userID, b := range m.userBuildingSessions {
		builders = append(builders, b)
		delete(m.userBuildingSessions, userID)
	}
	cancelSess := m.cancelSess
	m.mtx.Unlock()

	for _, p := range players {
		p.exit()
		metrics.ActiveSessions.Dec()
	}

	for _, b := range builders {
		b.Stop()
	}

	cancelSess()
	logger.Infof("Closed %d games and %d building sessions", len(players), len(builders))
}

func (m *manager) pool(ctx context.Context, updCh tgbotapi.UpdatesChannel) {
	logger := logging.FromContext(ctx).Named("manager.pool")
	for {
		select {
		case update, ok := <-updCh:
			if !ok {
				return
			}

			if err := m.handleUpdate(update); err != nil {
				logger.Errorf("handle update: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (m *manager) handleUpdate(update tgbotapi.Update) error {
	u, err := m.recvUser(update)
	if err != nil {
		if errors.Is(err, ErrCommandNotFound) {
			return nil
		}

		return fmt.Errorf("recv user: %w", err)
	}

	if update.Message != nil && update.Message.Chat != nil {
		if update.Message.Chat.IsGroup() || update.Message.Chat.IsSuperGroup() {
			msg := tgbotapi.NewMessage(update.Message.Chat.ID, resource.TextChatNotAllowed)
			if _, err := m.tg.Send(msg); err != nil {
				return fmt.Errorf("send msg: %w", err)
			}

			return nil
		}

		if err := m.handleCommand(u, update); err != nil {
			return fmt.Errorf("handle command query: %w", err)
		}
	}

	if update.CallbackQuery != nil {
		if err := m.handleCallbackQuery(u, update); err != nil {
			return fmt.Errorf("handle callback query: %w", err)
		}
	}

	return nil
}

func (m *manager) handleCommand(u userModel.User, upd tgbotapi.Update) error {
	chatID := upd.Message.Chat.ID

	switch strings.TrimSpace(upd.Message.Text) {
	case resource.CmdStart:
		if err := m.handleStartCommand(u, chatID); err != nil {
			return fmt.Errorf("handle start cmd: %w", err)
		}
	case resource.CmdRules, resource.RuleButtonText:
		if err := m.handleRulesButton(u, chatID); err != nil {
			return fmt.Errorf("handle rules button: %w", err)
		}
	case resource.CmdProfile, resource.ProfileButtonText:
		if err := m.handleProfileButton(u, chatID); err != nil {
			return fmt.Errorf("handle profile button: %w", err)
		}
	case resource.QuickStartButtonText:
		if err := m.handleQuickStartButton(u, chatID); err != nil {
			return fmt.Errorf("handle quick start button: %w", err)
		}
	case resource.CustomButtonText:
		if err := m.handleCustomButton(u, chatID); err != nil {
			return fmt.Errorf("handle custom button: %w", err)
		}
	case resource.NewSceneButtonText:
		if err := m.withPlayer(u, chatID, (*player).newScene); err != nil {
			return fmt.Errorf("handle new scene button: %w", err)
		}
	case resource.TwistButtonText:
		if err := m.withPlayer(u, chatID, (*player).throwTwist); err != nil {
			return fmt.Errorf("handle twist button: %w", err)
		}
	case resource.PauseButtonText:
		if err := m.withPlayer(u, chatID, func(p *player) error {
			p.togglePause()
			return nil
		}); err != nil {
			return fmt.Errorf("handle pause button: %w", err)
		}
	case resource.ResetTimerButtonText:
		if err := m.withPlayer(u, chatID, func(p *player) error {
			p.resetTimer()
			return nil
		}); err != nil {
			return fmt.Errorf("handle reset button: %w", err)
		}
	case resource.ExitButtonText:
		if err := m.handleButtonExit(u, chatID); err != nil {
			return fmt.Errorf("handle exit button: %w", err)
		}
	default:
		if session, ok := m.userBuildingSession(u.ID); ok {
			if err := session.Execute(upd); err != nil {
				return fmt.Errorf("execute building session: %w", err)
			}
		}
	}

	return nil
}

func (m *manager) handleCallbackQuery(u userModel.User, upd tgbotapi.Update) error {
	if session, ok := m.userBuildingSession(u.ID); ok {
		if err := session.Execute(upd); err != nil {
			return fmt.Errorf("execute building cb: %w", err)
		}

		return nil
	}

	if p, ok := m.userPlayer(u.ID); ok {
		if err := p.executeCbQuery(upd.CallbackQuery); err != nil {
			return fmt.Errorf("execute playing cb: %w", err)
		}

		return nil
	}

	if _, err := m.tg.AnswerCallbackQuery(
		tgbotapi.NewCallback(upd.CallbackQuery.ID, resource.TextUnknownCallbackAnswer),
	); err != nil {
		return fmt.Errorf("send answer msg: %w", err)
	}

	return nil
}

func (m *manager) withPlayer(u userModel.User, chatID int64, fn func(p *player) error) error {
	p, ok := m.userPlayer(u.ID)
	if !ok {
		msg := tgbotapi.NewMessage(chatID, resource.TextNoGameMsg)
		msg.ReplyMarkup = resource.CommonButtons
		if _, err := m.tg.Send(msg); err != nil {
			return fmt.Errorf("send msg: %w", err)
		}

		return nil
	}

	return fn(p)
}

// startGame validates the settings, draws the first scene and registers the
// game. A rejected start sends the single validation message.
func (m *manager) startGame(userID, chatID int64, settings game.Settings) error {
	logger := logging.FromContext(m.ctxSess).Named("manager.startGame")

	p := newPlayer(m.ctxSess, m.tg, chatID, userID)
	p.session = game.NewSession(m.ctxSess, game.Config{
		Catalog:  m.catalog,
		Interval: m.config.TickInterval,
		Listener: p,
		DoneFn:   m.sceneDoneFn(userID),
	})

	if err := p.session.Start(settings); err != nil {
		var validationErr *game.ValidationError
		switch {
		case errors.As(err, &validationErr):
			metrics.ValidationFailures.WithLabelValues(frontendName).Inc()
			if _, err := m.tg.Send(tgbotapi.NewMessage(chatID, validationErr.Message)); err != nil {
				return fmt.Errorf("send msg: %w", err)
			}

			return nil
		case errors.Is(err, scene.ErrConfiguration):
			logger.Errorf("catalog: %v", err)
			if _, err := m.tg.Send(tgbotapi.NewMessage(chatID, resource.TextCatalogBrokenMsg)); err != nil {
				return fmt.Errorf("send msg: %w", err)
			}

			return nil
		default:
			return fmt.Errorf("start session: %w", err)
		}
	}

	m.mtx.Lock()
	prev, exists := m.userPlayers[userID]
	m.userPlayers[userID] = p
	m.mtx.Unlock()

	if exists {
		prev.exit()
	} else {
		metrics.ActiveSessions.Inc()
	}

	logger.Infof("Game started, user: %d, actors: %d, duration: %d", userID, settings.ActorCount, settings.Duration)

	return nil
}

// sceneDoneFn stores every scene whose timer actually ran.
func (m *manager) sceneDoneFn(userID int64) func(record game.Record) {
	return func(record game.Record) {
		logger := logging.FromContext(m.ctxSess).Named("manager.sceneDoneFn")

		performed := time.Duration(record.Duration-record.Remaining) * time.Second
		if performed <= 0 && !record.Expired {
			return
		}

		entry := historyModel.NewEntry(userID)
		entry.Location = record.Scene.Location
		entry.Characters = append([]string(nil), record.Scene.Characters...)
		entry.Actors = append([]string(nil), record.Actors...)
		entry.Conflict = record.Scene.Conflict
		entry.Twist = record.Scene.Twist
		entry.Duration = time.Duration(record.Duration) * time.Second
		entry.Performed = performed
		entry.Expired = record.Expired
		entry.CreatedAt = record.EndedAt

		if m.historyDB == nil {
			return
		}

		if err := m.historyDB.Add(entry); err != nil {
			logger.Errorf("history db add: %v", err)
		}
	}
}

func (m *manager) builderWarnFn(session *builder.Session) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.userBuildingSessions[session.AuthorID] == session {
		delete(m.userBuildingSessions, session.AuthorID)
	}

	return nil
}

func (m *manager) builderDoneFn(session *builder.Session) error {
	m.mtx.Lock()
	current := m.userBuildingSessions[session.AuthorID] == session
	if current {
		delete(m.userBuildingSessions, session.AuthorID)
	}
	m.mtx.Unlock()

	if !current {
		return nil
	}

	if err := m.startGame(session.AuthorID, session.ChatID, session.Settings()); err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	return nil
}

// cleaner closes games nobody touched for the session timeout.
func (m *manager) cleaner(ctx context.Context) {
	logger := logging.FromContext(ctx).Named("manager.cleaner")
	interval := m.config.CleanupInterval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.cleanIdle(time.Now()); n > 0 {
				logger.Infof("Closed %d idle games", n)
			}
		}
	}
}

func (m *manager) cleanIdle(now time.Time) int {
	logger := logging.FromContext(m.ctxSess).Named("manager.cleanIdle")

	m.mtx.Lock()
	var idle []*player
	for userID, p := range m.userPlayers {
		if p.session.View().Timer.Active() {
			continue
		}

		if now.Sub(p.session.LastActive()) < m.config.SessionTimeout {
			continue
		}

		idle = append(idle, p)
		delete(m.userPlayers, userID)
	}
	m.mtx.Unlock()

	for _, p := range idle {
		p.exit()
		metrics.ActiveSessions.Dec()

		msg := tgbotapi.NewMessage(p.chatID, resource.TextSessionIdleMsg)
		msg.ReplyMarkup = resource.CommonButtons
		if _, err := m.tg.Send(msg); err != nil {
			logger.Errorf("send msg: %v", err)
		}
	}

	return len(idle)
}

// resetUserSessions stops whatever the user was doing.
func (m *manager) resetUserSessions(userID int64) bool {
	m.mtx.Lock()
	p, playing := m.userPlayers[userID]
	b, building := m.userBuildingSessions[userID]
	delete(m.userPlayers, userID)
	delete(m.userBuildingSessions, userID)
	m.mtx.Unlock()

	if playing {
		p.exit()
		metrics.ActiveSessions.Dec()
	}

	if building {
		b.Stop()
	}

	return playing || building
}

func (m *manager) userBuildingSession(userID int64) (*builder.Session, bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	session, ok := m.userBuildingSessions[userID]

	return session, ok
}

func (m *manager) userPlayer(userID int64) (*player, bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	p, ok := m.userPlayers[userID]

	return p, ok
}

func (m *manager) recvUser(upd tgbotapi.Update) (userModel.User, error) {
	var tgUser *tgbotapi.User
	var u userModel.User
	switch {
	case upd.CallbackQuery != nil:
		tgUser = upd.CallbackQuery.From
	case upd.Message != nil:
		tgUser = upd.Message.From
	}

	if tgUser == nil {
		return u, ErrCommandNotFound
	}

	u, err := m.userDB.Fetch(int64(tgUser.ID))
	if err == nil {
		return u, nil
	}

	if !errors.Is(err, userDb.ErrNotFound) {
		return u, fmt.Errorf("userdb fetch: %w", err)
	}

	now := time.Now()
	u = userModel.User{
		ID:           int64(tgUser.ID),
		FirstName:    tgUser.FirstName,
		LastName:     tgUser.LastName,
		LanguageCode: tgUser.LanguageCode,
		Username:     strings.TrimPrefix(tgUser.UserName, "@"),
		CreatedAt:    now,
		LastSeenAt:   now,
	}

	if err := m.userDB.Store(u); err != nil {
		return u, fmt.Errorf("userdb store: %w", err)
	}

	return u, nil
}
