// Package report prints errors that end the program.
package report

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/goaltime/internal/osutil"
)

func Error(err error) {
	pterm.Error.Println(err)
}

// Fatal logs err and ends the interactive program. The error is printed once
// the terminal has been restored.
func Fatal(err error) tea.Cmd {
	slog.Error("fatal error", slog.Any("error", err))

	return tea.Quit
}

func Quit(err error) {
	Error(err)
	os.Exit(osutil.ExitError.Int())
}
