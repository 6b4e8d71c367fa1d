package config

import (
	"regexp"
	"strings"
	"time"
)

var (
	maxGoalTime = 3600.0

	minMaxSessions = 1
	maxMaxSessions = 1000

	minTickInterval = time.Millisecond

	maxCelebration = time.Minute

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateGame(); err != nil {
		return err
	}

	if err := c.validatePresets(); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	switch c.Storage.Backend {
	case BackendBolt, BackendSQLite:
	default:
		return errUnknownBackend.Fmt(c.Storage.Backend)
	}

	return nil
}

func (c *Config) validateGame() error {
	if c.Game.GoalTime <= 0 || c.Game.GoalTime > maxGoalTime {
		return errInvalidGoalTime.Fmt(maxGoalTime, c.Game.GoalTime)
	}

	if c.Game.MaxSessions < minMaxSessions ||
		c.Game.MaxSessions > maxMaxSessions {
		return errInvalidMaxSessions.Fmt(
			minMaxSessions,
			maxMaxSessions,
			c.Game.MaxSessions,
		)
	}

	return nil
}

// validatePresets accepts empty pools: the allocator falls back to generated
// values.
func (c *Config) validatePresets() error {
	names := make(map[string]struct{}, len(c.Presets.Names))

	for i, name := range c.Presets.Names {
		if strings.TrimSpace(name) == "" {
			return errEmptyName.Fmt(i + 1)
		}

		if _, dup := names[name]; dup {
			return errDuplicateName.Fmt(name)
		}

		names[name] = struct{}{}
	}

	colors := make(map[string]struct{}, len(c.Presets.Colors))

	for _, color := range c.Presets.Colors {
		if !hexColorRegex.MatchString(color) {
			return errInvalidColor.Fmt(color)
		}

		// #ff595e and #FF595E render the same
		key := strings.ToUpper(color)
		if _, dup := colors[key]; dup {
			return errDuplicateColor.Fmt(color)
		}

		colors[key] = struct{}{}
	}

	return nil
}

func (c *Config) validateDisplay() error {
	if c.Display.TickInterval < minTickInterval {
		return errInvalidTickInterval.Fmt(minTickInterval, c.Display.TickInterval)
	}

	if c.Celebration.Duration < 0 || c.Celebration.Duration > maxCelebration {
		return errInvalidCelebration.Fmt(maxCelebration, c.Celebration.Duration)
	}

	return nil
}
