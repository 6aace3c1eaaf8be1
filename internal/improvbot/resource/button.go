package resource

import (
	"github.com/bloops-games/improv/internal/hashutil"
	"github.com/enescakir/emoji"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

const (
	CmdStart   = "/start"
	CmdRules   = "/rules"
	CmdProfile = "/profile"
)

var (
	// menu button text
	QuickStartButtonText = emoji.Fire.String() + " Quick start"
	CustomButtonText     = emoji.Gear.String() + " Custom game"
	RuleButtonText       = emoji.Bookmark.String() + " Rules"
	ProfileButtonText    = emoji.Alien.String() + " Profile"

	// playing button text
	NewSceneButtonText   = emoji.Rocket.String() + " New scene"
	TwistButtonText      = emoji.GameDie.String() + " Throw a twist"
	PauseButtonText      = emoji.Stopwatch.String() + " Pause/Resume"
	ResetTimerButtonText = emoji.Joystick.String() + " Reset timer"
	ExitButtonText       = emoji.ChequeredFlag.String() + " Exit game"

	// builder inline button text
	BuilderInlineNextText  = "Next"
	BuilderInlineNextData  = hashutil.CallbackData(BuilderInlineNextText)
	BuilderInlinePrevText  = "Back"
	BuilderInlinePrevData  = hashutil.CallbackData(BuilderInlinePrevText)
	BuilderInlineDoneText  = emoji.ChequeredFlag.String() + " Start"
	BuilderInlineDoneData  = hashutil.CallbackData("done")
	BuilderDefaultNameText = "Default names"
	BuilderDefaultNameData = hashutil.CallbackData("names")

	// timer inline button text
	TimerPauseText  = "Pause"
	TimerResumeText = "Resume"
	TimerBtnData    = hashutil.CallbackData("timer")
	TimerToggleData = hashutil.CallbackData("toggle")
)

var (
	// keyboard buttons
	QuickStartButton = tgbotapi.NewKeyboardButton(QuickStartButtonText)
	CustomButton     = tgbotapi.NewKeyboardButton(CustomButtonText)
	RulesButton      = tgbotapi.NewKeyboardButton(RuleButtonText)
	ProfileButton    = tgbotapi.NewKeyboardButton(ProfileButtonText)
	NewSceneButton   = tgbotapi.NewKeyboardButton(NewSceneButtonText)
	TwistButton      = tgbotapi.NewKeyboardButton(TwistButtonText)
	PauseButton      = tgbotapi.NewKeyboardButton(PauseButtonText)
	ResetTimerButton = tgbotapi.NewKeyboardButton(ResetTimerButtonText)
	ExitButton       = tgbotapi.NewKeyboardButton(ExitButtonText)

	CommonButtons = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(QuickStartButton, CustomButton),
		tgbotapi.NewKeyboardButtonRow(RulesButton, ProfileButton),
	)

	PlayingButtons = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(NewSceneButton, TwistButton),
		tgbotapi.NewKeyboardButtonRow(PauseButton, ResetTimerButton),
		tgbotapi.NewKeyboardButtonRow(ExitButton),
	)

	BuilderButtons = tgbotapi.NewReplyKeyboard(tgbotapi.NewKeyboardButtonRow(ExitButton))
)
