// Package game owns the game sessions, their players and attempts, and ranks
// players within a session. It is the only code that mutates persisted
// records.
package game

import (
	"cmp"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/goaltime/internal/models"
)

const (
	DefaultGoalTime    = 8.15
	DefaultMaxSessions = 20
)

// Store loads and saves the full list of sessions. Failures are handled by the
// store itself.
type Store interface {
	Load() []models.GameSession
	Save(sessions []models.GameSession)
}

// Allocator picks a display name and color for a new player.
type Allocator interface {
	Allocate(players []models.PlayerRecord) (name, color string)
}

// Engine is the session state machine. It is not safe for concurrent use; the
// caller owns it from a single goroutine.
type Engine struct {
	store       Store
	alloc       Allocator
	clock       clockwork.Clock
	newID       func() string
	sessionID   string
	playerID    string
	sessions    []models.GameSession
	goalTime    float64
	maxSessions int
}

// Option configures an Engine.
type Option func(e *Engine)

// WithClock sets the clock used for session and attempt timestamps.
func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithIDGenerator replaces the random identifier source.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// WithGoalTime sets the goal time copied into every new session.
func WithGoalTime(seconds float64) Option {
	return func(e *Engine) {
		e.goalTime = seconds
	}
}

// WithMaxSessions caps the number of stored sessions.
func WithMaxSessions(n int) Option {
	return func(e *Engine) {
		e.maxSessions = n
	}
}

// New loads the stored sessions and makes the most recent one active. When
// nothing is stored, a new game is started so that an active session and
// player always exist once New returns.
func New(store Store, alloc Allocator, opts ...Option) *Engine {
	e := &Engine{
		store:       store,
		alloc:       alloc,
		clock:       clockwork.NewRealClock(),
		newID:       uuid.NewString,
		goalTime:    DefaultGoalTime,
		maxSessions: DefaultMaxSessions,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.maxSessions < 1 {
		e.maxSessions = 1
	}

	e.init()

	return e
}

func (e *Engine) init() {
	e.sessions = e.store.Load()

	if len(e.sessions) == 0 {
		e.StartNewGame()
		return
	}

	if len(e.sessions) > e.maxSessions {
		slog.Info(
			"dropping sessions above the configured maximum",
			slog.Int("stored", len(e.sessions)),
			slog.Int("max", e.maxSessions),
		)

		e.sessions = e.sessions[:e.maxSessions]
		e.store.Save(e.sessions)
	}

	s := &e.sessions[0]
	e.sessionID = s.ID

	if len(s.Players) > 0 {
		e.playerID = s.Players[len(s.Players)-1].ID
		return
	}

	slog.Warn(
		"active session has no players, adding one",
		slog.String("session_id", s.ID),
	)

	// cannot fail: the session was made active above
	_, _ = e.StartNextPlayer()
}

func (e *Engine) now() time.Time {
	return e.clock.Now().UTC()
}

func (e *Engine) newPlayer(existing []models.PlayerRecord) models.PlayerRecord {
	name, color := e.alloc.Allocate(existing)

	return models.PlayerRecord{
		ID:       e.newID(),
		Name:     name,
		Color:    color,
		Attempts: []models.Attempt{},
	}
}

// session returns the active session within the store.
func (e *Engine) session() (*models.GameSession, bool) {
	if e.sessionID == "" {
		return nil, false
	}

	for i := range e.sessions {
		if e.sessions[i].ID == e.sessionID {
			return &e.sessions[i], true
		}
	}

	return nil, false
}

// StartNewGame creates a session with one player, places it first in the
// store and makes both active.
func (e *Engine) StartNewGame() {
	s := models.GameSession{
		ID:        e.newID(),
		CreatedAt: e.now(),
		GoalTime:  e.goalTime,
	}

	s.Players = []models.PlayerRecord{e.newPlayer(nil)}

	e.sessions = append([]models.GameSession{s}, e.sessions...)
	if len(e.sessions) > e.maxSessions {
		e.sessions = e.sessions[:e.maxSessions]
	}

	e.store.Save(e.sessions)

	e.sessionID = s.ID
	e.playerID = s.Players[0].ID

	slog.Debug(
		"new game started",
		slog.String("session_id", s.ID),
		slog.Float64("goal_time", s.GoalTime),
	)
}

// StartNextPlayer adds a player to the active session and makes them active.
func (e *Engine) StartNextPlayer() (models.PlayerRecord, error) {
	s, ok := e.session()
	if !ok {
		return models.PlayerRecord{}, ErrNoActiveSession
	}

	p := e.newPlayer(s.Players)
	s.Players = append(s.Players, p)

	e.store.Save(e.sessions)

	e.playerID = p.ID

	return p.Clone(), nil
}

// AddPlayerAttempt records elapsed seconds against the active player and
// returns the updated player.
func (e *Engine) AddPlayerAttempt(elapsed float64) (models.PlayerRecord, error) {
	if math.IsNaN(elapsed) || math.IsInf(elapsed, 0) || elapsed < 0 {
		return models.PlayerRecord{}, ErrInvalidElapsed.Fmt(elapsed)
	}

	s, ok := e.session()
	if !ok {
		return models.PlayerRecord{}, ErrNoActiveSession
	}

	p, ok := s.Player(e.playerID)
	if !ok {
		return models.PlayerRecord{}, ErrNoActivePlayer.Fmt(s.ID)
	}

	p.Attempts = append(p.Attempts, models.NewAttempt(
		elapsed,
		s.GoalTime,
		e.now(),
	))

	e.store.Save(e.sessions)

	return p.Clone(), nil
}

// Rankings returns the players of the active session who have attempted,
// best first.
func (e *Engine) Rankings() []models.PlayerRecord {
	s, ok := e.session()
	if !ok {
		return []models.PlayerRecord{}
	}

	return RankPlayers(s.Players)
}

// Rank returns the 1-based position of the player in the active session's
// rankings, or 0 if they are not ranked.
func (e *Engine) Rank(playerID string) int {
	i := slices.IndexFunc(e.Rankings(), func(p models.PlayerRecord) bool {
		return p.ID == playerID
	})

	return i + 1
}

// RankPlayers orders the players who have attempted by their lowest diff.
// Ties keep the input order.
func RankPlayers(players []models.PlayerRecord) []models.PlayerRecord {
	ranked := make([]models.PlayerRecord, 0, len(players))

	for i := range players {
		if players[i].HasAttempted() {
			ranked = append(ranked, players[i].Clone())
		}
	}

	slices.SortStableFunc(ranked, func(a, b models.PlayerRecord) int {
		return cmp.Compare(a.BestDiff(), b.BestDiff())
	})

	return ranked
}

// ResetAllData deletes every session and starts a fresh game.
func (e *Engine) ResetAllData() {
	e.sessions = []models.GameSession{}
	e.store.Save(e.sessions)

	e.sessionID = ""
	e.playerID = ""

	slog.Info("all game data reset")

	e.StartNewGame()
}

// CurrentSession returns a copy of the active session.
func (e *Engine) CurrentSession() (models.GameSession, bool) {
	s, ok := e.session()
	if !ok {
		return models.GameSession{}, false
	}

	return s.Clone(), true
}

// CurrentPlayer returns a copy of the active player.
func (e *Engine) CurrentPlayer() (models.PlayerRecord, bool) {
	s, ok := e.session()
	if !ok {
		return models.PlayerRecord{}, false
	}

	p, ok := s.Player(e.playerID)
	if !ok {
		return models.PlayerRecord{}, false
	}

	return p.Clone(), true
}

// Sessions returns a copy of every stored session, most recent first.
func (e *Engine) Sessions() []models.GameSession {
	out := make([]models.GameSession, len(e.sessions))

	for i := range e.sessions {
		out[i] = e.sessions[i].Clone()
	}

	return out
}

// GoalTime is the goal time new sessions start with.
func (e *Engine) GoalTime() float64 {
	return e.goalTime
}
