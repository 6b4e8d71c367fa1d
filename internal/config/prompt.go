package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 ██████╗  ██████╗  █████╗ ██╗  ████████╗██╗███╗   ███╗███████╗
██╔════╝ ██╔═══██╗██╔══██╗██║  ╚══██╔══╝██║████╗ ████║██╔════╝
██║  ███╗██║   ██║███████║██║     ██║   ██║██╔████╔██║█████╗
██║   ██║██║   ██║██╔══██║██║     ██║   ██║██║╚██╔╝██║██╔══╝
╚██████╔╝╚██████╔╝██║  ██║███████╗██║   ██║██║ ╚═╝ ██║███████╗
 ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝   ╚═╝╚═╝     ╚═╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	GoalTime    float64
	MaxSessions int
}

// WithPromptConfig returns an Option that configures settings via interactive
// prompts. It only runs when the config file does not exist yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to set up your first game.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'goaltime edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[float64]().
				Title("Goal time").
				Options(
					huh.NewOption("8.15 seconds", 8.15).Selected(true),
					huh.NewOption("5 seconds", 5.0),
					huh.NewOption("10 seconds", 10.0),
					huh.NewOption("15 seconds", 15.0),
					huh.NewOption("30 seconds", 30.0),
				).
				Value(&opts.GoalTime),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Games to keep in the records").
				Options(
					huh.NewOption("20 games", 20).Selected(true),
					huh.NewOption("10 games", 10),
					huh.NewOption("50 games", 50),
					huh.NewOption("100 games", 100),
				).
				Value(&opts.MaxSessions),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	if opts.GoalTime > 0 {
		c.Game.GoalTime = opts.GoalTime
	}

	if opts.MaxSessions > 0 {
		c.Game.MaxSessions = opts.MaxSessions
	}
}
