package app

import "github.com/urfave/cli/v2"

var (
	goalFlag = &cli.Float64Flag{
		Name:    "goal",
		Aliases: []string{"g"},
		Usage:   "Goal time in seconds for new games (default: 8.15)",
	}

	maxSessionsFlag = &cli.IntFlag{
		Name:    "max-sessions",
		Aliases: []string{"m"},
		Usage:   "Number of games to keep in the records (default: 20)",
	}

	backendFlag = &cli.StringFlag{
		Name:  "backend",
		Usage: "Where records are kept: bolt or sqlite (default: bolt)",
	}

	muteFlag = &cli.BoolFlag{
		Name:  "mute",
		Usage: "Do not play a sound when a new record is set",
	}

	notifyFlag = &cli.BoolFlag{
		Name:  "notify",
		Usage: "Show a desktop notification when a new record is set",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command when a new record is set",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the saved games as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include games started after this date (e.g. 'yesterday', '2 weeks ago')",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
)
