package resource

import "github.com/enescakir/emoji"

// manage text messages
var (
	TextGreetingMsg = emoji.Cinema.String() + " Hi, %s\n\n" +
		"This is @improvgen\\_bot " + emoji.Robot.String() + ", a prompt generator for improv practice.\n\n" +
		"The bot draws a location, one character per actor and a conflict, then runs the scene timer. " +
		"Throw a twist when the scene needs a push" + emoji.GameDie.String() + "\n\n" +
		"*Rules:* " + CmdRules + "\n\n" +
		"*Commands:*\n" +
		"/start - greeting and short help\n" +
		"/rules - how to play\n" +
		"/profile - your played scenes\n\n" +
		"*Source:* [improv](https://github.com/bloops-games/improv)"

	TextRulesMsg = emoji.Bookmark.String() + " *How to play*\n\n" +
		emoji.Fire.String() + " *Quick start* draws a scene for 2 actors with a 3 minute timer.\n" +
		emoji.Gear.String() + " *Custom game* lets you pick the number of actors (1-5), the scene length and the actor names.\n\n" +
		"Every scene has a location, a character for each actor and a conflict. " +
		"The timer turns orange under 30 seconds and red under 10.\n\n" +
		emoji.GameDie.String() + " *Twist* adds one unexpected event to the running scene, once per scene.\n" +
		emoji.Rocket.String() + " *New scene* draws a fresh scene and restarts the timer.\n" +
		emoji.ChequeredFlag.String() + " *Exit* ends the game and returns to the menu."

	TextChatNotAllowed        = emoji.WomanGesturingNo.String() + " The bot does not work in group chats"
	TextLeavingSessionsMsg    = "You left the game"
	TextNoGameMsg             = "There is no running game. Start one from the menu"
	TextSessionIdleMsg        = emoji.Stopwatch.String() + " The game was closed after a long pause"
	TextSettingsMsg           = emoji.Gear.String() + " Setting up the game"
	TextCatalogBrokenMsg      = emoji.CrossMark.String() + " The scene catalog is misconfigured, please contact the bot owner"
	TextTimeUpMsg             = emoji.ChequeredFlag.String() + " *Time's up!* Take a bow"
	TextTwistUsedMsg          = "The twist for this scene has already been thrown"
	TextProfileEmptyMsg       = "You have not played any scenes yet"
	TextBuilderWarnMsg        = emoji.Stopwatch.String() + " The game setup was closed, start again from the menu"
	TextTimerPausedAnswer     = "Paused"
	TextTimerResumedAnswer    = "Running"
	TextTimerExpiredAnswer    = "Time is up, draw a new scene"
	TextTimerResetAnswer      = "Timer reset"
	TextUnknownCallbackAnswer = "This button is no longer active"
)

// builder text messages
var (
	TextChooseActorCount    = "How many actors are on stage?"
	TextChooseDuration      = emoji.Stopwatch.String() + " How long is each scene?"
	TextEnterActorName      = "Send the name of actor %d of %d"
	TextConfigurationDone   = "Everything is ready. Start the game?"
	TextActorCountAnswer    = "Actors: %d"
	TextDurationAnswer      = "Scene length: %s"
	TextActorNameAnswer     = "Actor %d: %s"
	TextDefaultNamesAnswer  = "Using default names"
	TextActorNamesRequired  = "Send a name for every actor or press Default names"
	TextBuilderNamesPending = "names pending"
)

// profile text messages
var (
	TextProfileHeader = emoji.Alien.String() + " Profile of *%s*\n\n"
)
