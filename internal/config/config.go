package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Presets     PresetConfig      `mapstructure:"presets"`
		Storage     StorageConfig     `mapstructure:"storage"`
		Celebration CelebrationConfig `mapstructure:"celebration"`
		Game        GameConfig        `mapstructure:"game"`
		Display     DisplayConfig     `mapstructure:"display"`
	}

	// GameConfig holds the rules copied into every new session
	GameConfig struct {
		GoalTime    float64 `mapstructure:"goal_time"`
		MaxSessions int     `mapstructure:"max_sessions"`
	}

	// PresetConfig holds the pools new players draw their name and colour from
	PresetConfig struct {
		Names  []string `mapstructure:"names"`
		Colors []string `mapstructure:"colors"`
	}

	// CelebrationConfig holds the new record feedback settings
	CelebrationConfig struct {
		Cmd      string        `mapstructure:"cmd"`
		Duration time.Duration `mapstructure:"duration"`
		Sound    bool          `mapstructure:"sound"`
		Notify   bool          `mapstructure:"notify"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		TickInterval time.Duration `mapstructure:"tick_interval"`
		DarkTheme    bool          `mapstructure:"dark_theme"`
	}

	// StorageConfig selects where records are kept
	StorageConfig struct {
		Backend Backend `mapstructure:"backend"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error

	// Backend names a persistence backend
	Backend string
)

const Version = "v0.3.0"

const (
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

var (
	defaultNames = []string{
		"Ace", "Blaze", "Comet", "Dash", "Echo", "Flash",
		"Ghost", "Hawk", "Jazz", "Nova", "Pixel", "Rocket",
	}

	defaultColors = []string{
		"#FF595E", "#FFCA3A", "#8AC926", "#1982C4", "#6A4C93", "#FF924C",
		"#52A675", "#4267AC", "#B5A6C9", "#F15BB5", "#00BBF9", "#00F5D4",
	}
)

// DefaultNames returns a copy of the built-in player names.
func DefaultNames() []string {
	return append([]string(nil), defaultNames...)
}

// DefaultColors returns a copy of the built-in player colours.
func DefaultColors() []string {
	return append([]string(nil), defaultColors...)
}

// Default returns the configuration used when no file or flag overrides it.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			GoalTime:    8.15,
			MaxSessions: 20,
		},
		Presets: PresetConfig{
			Names:  DefaultNames(),
			Colors: DefaultColors(),
		},
		Celebration: CelebrationConfig{
			Duration: 5 * time.Second,
			Sound:    true,
		},
		Display: DisplayConfig{
			TickInterval: 16 * time.Millisecond,
			DarkTheme:    true,
		},
		Storage: StorageConfig{
			Backend: BackendBolt,
		},
	}
}

// New creates a new Config from the defaults and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
