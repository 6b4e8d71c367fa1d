package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Backend     string
	Cmd         string
	GoalTime    float64
	MaxSessions int
	Mute        bool
	Notify      bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were explicitly set override the file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Backend:     ctx.String("backend"),
			Cmd:         ctx.String("cmd"),
			GoalTime:    ctx.Float64("goal"),
			MaxSessions: ctx.Int("max-sessions"),
			Mute:        ctx.Bool("mute"),
			Notify:      ctx.Bool("notify"),
		}

		return applyCLIOptions(c, opts, ctx.IsSet)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions, isSet func(string) bool) error {
	if isSet("goal") {
		if opts.GoalTime <= 0 {
			return errInvalidCLIGoal.Fmt(opts.GoalTime)
		}

		c.Game.GoalTime = opts.GoalTime
	}

	if isSet("max-sessions") {
		c.Game.MaxSessions = opts.MaxSessions
	}

	if opts.Backend != "" {
		c.Storage.Backend = Backend(strings.ToLower(strings.TrimSpace(opts.Backend)))
	}

	if opts.Cmd != "" {
		c.Celebration.Cmd = opts.Cmd
	}

	if opts.Mute {
		c.Celebration.Sound = false
	}

	if opts.Notify {
		c.Celebration.Notify = true
	}

	return nil
}
