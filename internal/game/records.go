package game

import (
	"time"

	"github.com/ayoisaiah/goaltime/internal/models"
)

// PlayerStats summarises one ranked player of a session.
type PlayerStats struct {
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Rank     int     `json:"rank"`
	Best     float64 `json:"best"`
	Average  float64 `json:"average"`
	Attempts int     `json:"attempts"`
}

// SessionStats is the leaderboard of a session.
type SessionStats struct {
	CreatedAt time.Time     `json:"createdAt"`
	ID        string        `json:"id"`
	Players   []PlayerStats `json:"players"`
	GoalTime  float64       `json:"goalTime"`
}

// Stats ranks the players of s who have attempted and computes their best and
// average diff.
func Stats(s *models.GameSession) SessionStats {
	ranked := RankPlayers(s.Players)

	stats := SessionStats{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		GoalTime:  s.GoalTime,
		Players:   make([]PlayerStats, len(ranked)),
	}

	for i := range ranked {
		p := &ranked[i]

		stats.Players[i] = PlayerStats{
			Name:     p.Name,
			Color:    p.Color,
			Rank:     i + 1,
			Best:     p.BestDiff(),
			Average:  p.AverageDiff(),
			Attempts: len(p.Attempts),
		}
	}

	return stats
}

// SessionsSince returns the sessions created at or after since, keeping their
// order. A zero since keeps every session.
func SessionsSince(sessions []models.GameSession, since time.Time) []models.GameSession {
	if since.IsZero() {
		return sessions
	}

	out := make([]models.GameSession, 0, len(sessions))

	for i := range sessions {
		if !sessions[i].CreatedAt.Before(since) {
			out = append(out, sessions[i])
		}
	}

	return out
}
