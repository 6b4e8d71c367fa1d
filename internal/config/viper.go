package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyGoalTime            = "game.goal_time"
	keyMaxSessions         = "game.max_sessions"
	keyPresetNames         = "presets.names"
	keyPresetColors        = "presets.colors"
	keyCelebrationDuration = "celebration.duration"
	keyCelebrationSound    = "celebration.sound"
	keyCelebrationNotify   = "celebration.notify"
	keyCelebrationCmd      = "celebration.cmd"
	keyDarkTheme           = "display.dark_theme"
	keyTickInterval        = "display.tick_interval"
	keyStorageBackend      = "storage.backend"
)

// WithViperConfig returns an Option that loads configuration from Viper. A
// missing file is created with the default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the current values of c as Viper defaults so that
// earlier options (such as the first-run prompt) end up in the written file.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyGoalTime, c.Game.GoalTime)
	v.SetDefault(keyMaxSessions, c.Game.MaxSessions)
	v.SetDefault(keyPresetNames, c.Presets.Names)
	v.SetDefault(keyPresetColors, c.Presets.Colors)
	v.SetDefault(keyCelebrationDuration, c.Celebration.Duration.String())
	v.SetDefault(keyCelebrationSound, c.Celebration.Sound)
	v.SetDefault(keyCelebrationNotify, c.Celebration.Notify)
	v.SetDefault(keyCelebrationCmd, c.Celebration.Cmd)
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyTickInterval, c.Display.TickInterval.String())
	v.SetDefault(keyStorageBackend, string(c.Storage.Backend))
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	// lists from the file replace the presets instead of being merged into them
	c.Presets.Names = nil
	c.Presets.Colors = nil

	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
