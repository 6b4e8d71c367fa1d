package config

import "github.com/ayoisaiah/goaltime/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidCLIGoal = &apperr.Error{
		Message: "--goal must be a positive number of seconds, got %v",
	}

	errInvalidGoalTime = &apperr.Error{
		Message: "goal time must be greater than 0 and at most %v seconds, got %v",
	}

	errInvalidMaxSessions = &apperr.Error{
		Message: "max sessions must be between %d and %d, got %d",
	}

	errEmptyName = &apperr.Error{
		Message: "preset name #%d cannot be empty",
	}

	errDuplicateName = &apperr.Error{
		Message: "preset name %q is listed more than once",
	}

	errDuplicateColor = &apperr.Error{
		Message: "preset color %s is listed more than once",
	}

	errInvalidColor = &apperr.Error{
		Message: "preset color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidTickInterval = &apperr.Error{
		Message: "tick interval must be at least %v, got %v",
	}

	errInvalidCelebration = &apperr.Error{
		Message: "celebration duration must be between 0 and %v, got %v",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %s (must be bolt or sqlite)",
	}
)
