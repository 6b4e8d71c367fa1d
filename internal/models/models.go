// Package models defines the persisted game records: sessions, players and
// their attempts.
package models

import (
	"math"
	"time"
)

// Attempt is one stop-the-clock action. It is never modified once created.
type Attempt struct {
	At      time.Time `json:"at"`
	Elapsed float64   `json:"elapsed"`
	// Diff is |Elapsed - GoalTime| of the owning session
	Diff float64 `json:"diff"`
}

// PlayerRecord is a player within a single session. Name and Color are fixed at
// creation; Attempts only ever grows.
type PlayerRecord struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Attempts []Attempt `json:"attempts"`
}

// GameSession is one play gathering. Players are kept in turn order.
type GameSession struct {
	CreatedAt time.Time      `json:"createdAt"`
	ID        string         `json:"id"`
	Players   []PlayerRecord `json:"players"`
	GoalTime  float64        `json:"goalTime"`
}

// NewAttempt computes the deviation of elapsed from goalTime.
func NewAttempt(elapsed, goalTime float64, at time.Time) Attempt {
	return Attempt{
		Elapsed: elapsed,
		Diff:    math.Abs(elapsed - goalTime),
		At:      at,
	}
}

// Over reports whether the attempt stopped after the goal time.
func (a Attempt) Over(goalTime float64) bool {
	return a.Elapsed > goalTime
}

// HasAttempted reports whether the player has at least one attempt.
func (p *PlayerRecord) HasAttempted() bool {
	return len(p.Attempts) > 0
}

// BestDiff returns the lowest diff across all attempts, or +Inf if the player
// has not attempted yet.
func (p *PlayerRecord) BestDiff() float64 {
	best := math.Inf(1)

	for i := range p.Attempts {
		best = math.Min(best, p.Attempts[i].Diff)
	}

	return best
}

// BestAttempt returns the first attempt with the lowest diff.
func (p *PlayerRecord) BestAttempt() (Attempt, bool) {
	if !p.HasAttempted() {
		return Attempt{}, false
	}

	best := p.Attempts[0]

	for _, a := range p.Attempts[1:] {
		if a.Diff < best.Diff {
			best = a
		}
	}

	return best, true
}

// AverageDiff returns the mean diff of all attempts.
func (p *PlayerRecord) AverageDiff() float64 {
	if !p.HasAttempted() {
		return 0
	}

	var sum float64
	for i := range p.Attempts {
		sum += p.Attempts[i].Diff
	}

	return sum / float64(len(p.Attempts))
}

// LastAttempt returns the most recent attempt.
func (p *PlayerRecord) LastAttempt() (Attempt, bool) {
	if !p.HasAttempted() {
		return Attempt{}, false
	}

	return p.Attempts[len(p.Attempts)-1], true
}

// LastIsPersonalBest reports whether the most recent attempt matches the
// player's best diff.
func (p *PlayerRecord) LastIsPersonalBest() bool {
	last, ok := p.LastAttempt()
	if !ok {
		return false
	}

	return last.Diff == p.BestDiff()
}

// Clone returns a copy that shares no slices with p.
func (p *PlayerRecord) Clone() PlayerRecord {
	c := *p
	c.Attempts = append(make([]Attempt, 0, len(p.Attempts)), p.Attempts...)

	return c
}

// Player returns the player with the given id.
func (s *GameSession) Player(id string) (*PlayerRecord, bool) {
	i := s.PlayerIndex(id)
	if i < 0 {
		return nil, false
	}

	return &s.Players[i], true
}

// PlayerIndex returns the position of the player in turn order, or -1.
func (s *GameSession) PlayerIndex(id string) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}

	return -1
}

// Clone returns a deep copy of the session.
func (s *GameSession) Clone() GameSession {
	c := *s
	c.Players = make([]PlayerRecord, len(s.Players))

	for i := range s.Players {
		c.Players[i] = s.Players[i].Clone()
	}

	return c
}
