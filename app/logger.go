package app

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/goaltime/internal/pathutil"
)

var logWriter *lumberjack.Logger

// setupLogger sends the default slog logger to a rotating file since the
// terminal belongs to the game.
func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logWriter = &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    1, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	handler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

func closeLogger() error {
	if logWriter == nil {
		return nil
	}

	return logWriter.Close()
}
