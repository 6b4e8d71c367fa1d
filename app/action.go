package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/goaltime/internal/allocator"
	"github.com/ayoisaiah/goaltime/internal/celebrate"
	"github.com/ayoisaiah/goaltime/internal/config"
	"github.com/ayoisaiah/goaltime/internal/game"
	"github.com/ayoisaiah/goaltime/internal/models"
	"github.com/ayoisaiah/goaltime/internal/pathutil"
	"github.com/ayoisaiah/goaltime/internal/timeutil"
	"github.com/ayoisaiah/goaltime/internal/ui"
	"github.com/ayoisaiah/goaltime/play"
	"github.com/ayoisaiah/goaltime/store"
)

const (
	envNoColor         = "NO_COLOR"
	envGoaltimeNoColor = "GOALTIME_NO_COLOR"
)

const noRecordsMsg = "No saved games found"

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig builds the configuration from the config file and the command
// line. prompt enables the first run questions.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	opts := []config.Option{}

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// openStore opens the configured backend.
func openStore(cfg *config.Config) (*store.Adapter, error) {
	var (
		b   store.Backend
		err error
	)

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		b, err = store.NewSQLite(pathutil.SQLiteFilePath())
	default:
		b, err = store.NewBolt(pathutil.BoltFilePath())
	}

	if err != nil {
		return nil, err
	}

	slog.Debug("store opened", slog.String("backend", b.Name()))

	return store.NewAdapter(b), nil
}

func newEngine(cfg *config.Config, adapter *store.Adapter) *game.Engine {
	return game.New(
		adapter,
		allocator.New(cfg.Presets.Names, cfg.Presets.Colors, nil),
		game.WithGoalTime(cfg.Game.GoalTime),
		game.WithMaxSessions(cfg.Game.MaxSessions),
	)
}

// editConfigAction handles the edit-config command which opens the goaltime
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	configPath := pathutil.ConfigFilePath()

	// writes the defaults if the file does not exist yet
	_, err := config.New(config.WithViperConfig(configPath))
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, configPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	err = cmd.Run()
	if err != nil {
		return err
	}

	return nil
}

// recordsAction handles the records command and prints the leaderboard of
// every saved game started within the requested period.
func recordsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	var since time.Time

	if s := ctx.String("since"); s != "" {
		since, err = timeutil.FromStr(s, time.Now())
		if err != nil {
			return err
		}
	}

	adapter, err := openStore(cfg)
	if err != nil {
		return err
	}

	defer adapter.Close()

	sessions := game.SessionsSince(adapter.Load(), since)

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return printRecords(sessions)
}

func printRecords(sessions []models.GameSession) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	for i := range sessions {
		stats := game.Stats(&sessions[i])
		ui.PrintSession(config.Stdout, &stats)
	}

	return nil
}

// resetAction handles the reset command which deletes every saved game. It
// requests confirmation unless --yes is set.
func resetAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		confirmed := false

		err = huh.NewConfirm().
			Title("Delete all records?").
			Description("Every saved game is removed. This cannot be undone.").
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}

		if !confirmed {
			return nil
		}
	}

	adapter, err := openStore(cfg)
	if err != nil {
		return err
	}

	defer adapter.Close()

	newEngine(cfg, adapter).ResetAllData()

	pterm.Success.Println("All records deleted")

	return nil
}

// defaultAction starts the game.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	adapter, err := openStore(cfg)
	if err != nil {
		return err
	}

	defer adapter.Close()

	celebrator := celebrate.New(cfg.Celebration)

	g := play.New(play.Options{
		Engine:              newEngine(cfg, adapter),
		Celebrator:          celebrator,
		Clock:               clockwork.NewRealClock(),
		TickInterval:        cfg.Display.TickInterval,
		CelebrationDuration: cfg.Celebration.Duration,
		DarkTheme:           cfg.Display.DarkTheme,
		Debug:               ctx.Bool("debug"),
	})

	p := tea.NewProgram(g, tea.WithAltScreen())

	_, err = p.Run()

	g.Close()
	celebrator.Wait()

	if err != nil {
		return err
	}

	return g.Err()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/goaltime/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if GOALTIME_NO_COLOR is set
	if _, exists := os.LookupEnv(envGoaltimeNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err = pathutil.Initialize()
	if err != nil {
		return err
	}

	setupLogger(ctx.Bool("debug"))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting goaltime")

	return closeLogger()
}
