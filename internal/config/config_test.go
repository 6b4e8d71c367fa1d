package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const modifiedConfig = `game:
  goal_time: 10
  max_sessions: 5
presets:
  names:
    - Red
    - Blue
celebration:
  duration: 2s
  sound: false
storage:
  backend: sqlite
`

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "default config should be written on first run")

	// the written file must read back to the same values
	cfg, err = New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte(modifiedConfig), 0o600)
	require.NoError(t, err)

	want := Default()
	want.Game = GameConfig{GoalTime: 10, MaxSessions: 5}
	want.Presets.Names = []string{"Red", "Blue"}
	want.Celebration.Duration = 2 * time.Second
	want.Celebration.Sound = false
	want.Storage.Backend = BackendSQLite

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestViperInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("game:\n  goal_time: -1\n"), 0o600)
	require.NoError(t, err)

	_, err = New(WithViperConfig(configPath))
	assert.ErrorIs(t, err, errConfigValidation)
	assert.ErrorIs(t, err, errInvalidGoalTime)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		want   error
		modify func(c *Config)
		name   string
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:   "zero goal time",
			modify: func(c *Config) { c.Game.GoalTime = 0 },
			want:   errInvalidGoalTime,
		},
		{
			name:   "goal time above an hour",
			modify: func(c *Config) { c.Game.GoalTime = 3601 },
			want:   errInvalidGoalTime,
		},
		{
			name:   "no sessions kept",
			modify: func(c *Config) { c.Game.MaxSessions = 0 },
			want:   errInvalidMaxSessions,
		},
		{
			name:   "blank preset name",
			modify: func(c *Config) { c.Presets.Names = []string{"Ace", "  "} },
			want:   errEmptyName,
		},
		{
			name:   "duplicate preset name",
			modify: func(c *Config) { c.Presets.Names = []string{"Ace", "Blaze", "Ace"} },
			want:   errDuplicateName,
		},
		{
			name: "duplicate preset colour ignoring case",
			modify: func(c *Config) {
				c.Presets.Colors = []string{"#FF595E", "#1982C4", "#ff595e"}
			},
			want: errDuplicateColor,
		},
		{
			name:   "short hex colour",
			modify: func(c *Config) { c.Presets.Colors = []string{"#FFF"} },
			want:   errInvalidColor,
		},
		{
			name: "empty pools fall back to generated values",
			modify: func(c *Config) {
				c.Presets.Names = nil
				c.Presets.Colors = nil
			},
		},
		{
			name:   "tick interval too small",
			modify: func(c *Config) { c.Display.TickInterval = time.Microsecond },
			want:   errInvalidTickInterval,
		},
		{
			name:   "negative celebration",
			modify: func(c *Config) { c.Celebration.Duration = -time.Second },
			want:   errInvalidCelebration,
		},
		{
			name:   "unknown backend",
			modify: func(c *Config) { c.Storage.Backend = "postgres" },
			want:   errUnknownBackend,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}

			assert.True(
				t,
				errors.Is(err, tc.want),
				"expected %v, got %v",
				tc.want,
				err,
			)
		})
	}
}

func TestCLIConfig(t *testing.T) {
	cases := []struct {
		Flags map[string]string
		Want  func(c *Config)
		Name  string
	}{
		{
			Name:  "no flags keep the defaults",
			Flags: map[string]string{},
			Want:  func(*Config) {},
		},
		{
			Name: "override goal and sessions",
			Flags: map[string]string{
				"goal":         "5.5",
				"max-sessions": "3",
			},
			Want: func(c *Config) {
				c.Game.GoalTime = 5.5
				c.Game.MaxSessions = 3
			},
		},
		{
			Name: "celebration flags",
			Flags: map[string]string{
				"mute":    "true",
				"notify":  "true",
				"cmd":     "echo hi",
				"backend": "SQLite",
			},
			Want: func(c *Config) {
				c.Celebration.Sound = false
				c.Celebration.Notify = true
				c.Celebration.Cmd = "echo hi"
				c.Storage.Backend = BackendSQLite
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			f := flag.NewFlagSet("goaltime", flag.ContinueOnError)
			_ = f.Float64("goal", 0, "")
			_ = f.Int("max-sessions", 0, "")
			_ = f.String("backend", "", "")
			_ = f.String("cmd", "", "")
			_ = f.Bool("mute", false, "")
			_ = f.Bool("notify", false, "")

			for k, v := range tc.Flags {
				require.NoError(t, f.Set(k, v))
			}

			ctx := cli.NewContext(&cli.App{}, f, nil)

			cfg, err := New(WithCLIConfig(ctx))
			require.NoError(t, err)

			want := Default()
			tc.Want(want)

			assert.Equal(t, want, cfg)
		})
	}
}

func TestCLIConfigRejectsNegativeGoal(t *testing.T) {
	f := flag.NewFlagSet("goaltime", flag.ContinueOnError)
	_ = f.Float64("goal", 0, "")
	_ = f.Int("max-sessions", 0, "")
	require.NoError(t, f.Set("goal", "-2"))

	ctx := cli.NewContext(&cli.App{}, f, nil)

	_, err := New(WithCLIConfig(ctx))
	assert.ErrorIs(t, err, errInvalidCLIGoal)
}
