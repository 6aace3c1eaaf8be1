package buildinfo

const (
	ProjectName   = "ImprovGen"
	GithubURL     = "https://github.com/bloops-games/improv"
	BotFatherURL  = "https://t.me/botfather"
	GreetingCLI   = "%s %s\nScenes, characters and conflicts for improv practice\nsource: %s\n\n"
	TgBotUsername = "improvgen_bot"
)

var Graffiti = `
  _                                    ____
 (_)_ __ ___  _ __  _ __ _____   __  / ___| ___ _ __
 | | '_ ' _ \| '_ \| '__/ _ \ \ / / | |  _ / _ \ '_ \
 | | | | | | | |_) | | | (_) \ V /  | |_| |  __/ | | |
 |_|_| |_| |_| .__/|_|  \___/ \_/    \____|\___|_| |_|
             |_|
`
