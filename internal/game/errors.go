package game

import "github.com/ayoisaiah/goaltime/internal/apperr"

var (
	ErrNoActiveSession = &apperr.Error{
		Message: "no active session: start a new game first",
	}

	ErrNoActivePlayer = &apperr.Error{
		Message: "no active player in session %s",
	}

	ErrInvalidElapsed = &apperr.Error{
		Message: "elapsed time must be a finite, non-negative number of seconds, got %v",
	}
)
