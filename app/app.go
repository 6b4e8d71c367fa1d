package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/goaltime/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the goaltime app instance.
func Get() *cli.App {
	goaltimeApp := &cli.App{
		Name: "goaltime",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Goaltime is a pass-the-keyboard party game for the command-line. Players
		take turns stopping a running clock as close as possible to the goal time,
		and the closest attempt of each player decides the ranking.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:  "records",
				Usage: "Print the leaderboard of every saved game",
				Flags: []cli.Flag{
					jsonFlag,
					sinceFlag,
				},
				Action: recordsAction,
			},
			{
				Name:  "reset",
				Usage: "Delete every saved game and start over",
				Flags: []cli.Flag{
					yesFlag,
				},
				Action: resetAction,
			},
		},
		Flags: []cli.Flag{
			goalFlag,
			maxSessionsFlag,
			backendFlag,
			muteFlag,
			notifyFlag,
			cmdFlag,
			debugFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return goaltimeApp
}
