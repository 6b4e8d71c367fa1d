package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/goaltime/internal/allocator"
	"github.com/ayoisaiah/goaltime/internal/models"
	"github.com/ayoisaiah/goaltime/store"
)

var (
	testNames  = []string{"Ace", "Blaze", "Comet", "Dash"}
	testColors = []string{"#FF595E", "#FFCA3A", "#8AC926", "#1982C4"}
	epoch      = time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)
)

type fixture struct {
	engine  *Engine
	adapter *store.Adapter
	clock   *clockwork.FakeClock
}

func sequentialIDs() func() string {
	n := 0

	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newFixture(t *testing.T, seed []models.GameSession, opts ...Option) fixture {
	t.Helper()

	a := store.NewAdapter(store.NewMemory())
	if seed != nil {
		a.Save(seed)
	}

	c := clockwork.NewFakeClockAt(epoch)

	opts = append([]Option{
		WithClock(c),
		WithIDGenerator(sequentialIDs()),
	}, opts...)

	e := New(a, allocator.New(testNames, testColors, rand.NewPCG(1, 2)), opts...)

	return fixture{engine: e, adapter: a, clock: c}
}

// assertPersisted checks that the stored sessions match the in-memory ones.
func assertPersisted(t *testing.T, f fixture) {
	t.Helper()

	if diff := cmp.Diff(f.engine.Sessions(), f.adapter.Load(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("persisted sessions differ from memory (-memory +stored):\n%s", diff)
	}
}

func seedSessions(n int) []models.GameSession {
	sessions := make([]models.GameSession, n)

	for i := range sessions {
		sessions[i] = models.GameSession{
			ID:        fmt.Sprintf("seed-%d", i),
			CreatedAt: epoch.Add(-time.Duration(i) * time.Hour),
			GoalTime:  DefaultGoalTime,
			Players: []models.PlayerRecord{
				{ID: fmt.Sprintf("seed-%d-p", i), Name: "Ace", Color: "#FF595E", Attempts: []models.Attempt{}},
			},
		}
	}

	return sessions
}

func TestNewGameOnEmptyStore(t *testing.T) {
	f := newFixture(t, nil)

	sessions := f.engine.Sessions()
	require.Len(t, sessions, 1)

	s := sessions[0]
	assert.Equal(t, DefaultGoalTime, s.GoalTime)
	assert.True(t, s.CreatedAt.Equal(epoch))
	require.Len(t, s.Players, 1)

	p := s.Players[0]
	assert.Contains(t, testNames, p.Name)
	assert.Contains(t, testColors, p.Color)
	assert.Empty(t, p.Attempts)

	cur, ok := f.engine.CurrentPlayer()
	require.True(t, ok)
	assert.Equal(t, p.ID, cur.ID)

	assertPersisted(t, f)
}

func TestScenarioPerfectAttempt(t *testing.T) {
	f := newFixture(t, nil)

	p, err := f.engine.AddPlayerAttempt(8.15)
	require.NoError(t, err)

	require.Len(t, p.Attempts, 1)
	assert.Zero(t, p.Attempts[0].Diff)

	rankings := f.engine.Rankings()
	require.Len(t, rankings, 1)
	assert.Equal(t, p.ID, rankings[0].ID)
	assert.Equal(t, 1, f.engine.Rank(p.ID))
	assert.True(t, p.LastIsPersonalBest())

	assertPersisted(t, f)
}

func TestScenarioSecondPlayerOvertakes(t *testing.T) {
	f := newFixture(t, nil)

	p1, err := f.engine.AddPlayerAttempt(8.65)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p1.Attempts[0].Diff, 1e-9)

	p2, err := f.engine.StartNextPlayer()
	require.NoError(t, err)
	assert.NotEqual(t, p1.Name, p2.Name)
	assert.NotEqual(t, p1.Color, p2.Color)

	p2, err = f.engine.AddPlayerAttempt(8.35)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, p2.Attempts[0].Diff, 1e-9)

	ids := func(players []models.PlayerRecord) []string {
		out := make([]string, len(players))
		for i := range players {
			out[i] = players[i].ID
		}

		return out
	}

	assert.Equal(t, []string{p2.ID, p1.ID}, ids(f.engine.Rankings()))
	assert.Equal(t, 2, f.engine.Rank(p1.ID))

	assertPersisted(t, f)
}

func TestScenarioResetAllData(t *testing.T) {
	f := newFixture(t, seedSessions(5))
	require.Len(t, f.engine.Sessions(), 5)

	f.engine.ResetAllData()

	sessions := f.engine.Sessions()
	require.Len(t, sessions, 1)
	require.Len(t, sessions[0].Players, 1)
	assert.Empty(t, sessions[0].Players[0].Attempts)

	cur, ok := f.engine.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, sessions[0].ID, cur.ID)

	assertPersisted(t, f)
}

func TestCorruptStoreStartsNewGame(t *testing.T) {
	m := store.NewMemory()
	require.NoError(t, m.Put(store.SessionsKey, []byte(`{not json`)))

	a := store.NewAdapter(m)
	e := New(a, allocator.New(testNames, testColors, nil))

	assert.Len(t, e.Sessions(), 1)
	assert.Len(t, a.Load(), 1)
}

func TestAttemptDiffUsesSessionGoal(t *testing.T) {
	seed := seedSessions(1)
	seed[0].GoalTime = 5

	f := newFixture(t, seed, WithGoalTime(10))

	cases := []float64{0, 4.2, 5, 5.0001, 9.99, 123.456}

	for _, elapsed := range cases {
		p, err := f.engine.AddPlayerAttempt(elapsed)
		require.NoError(t, err)

		last, _ := p.LastAttempt()
		assert.Equal(t, elapsed, last.Elapsed)
		assert.Equal(t, math.Abs(elapsed-5), last.Diff, "elapsed %v", elapsed)
	}

	// sessions created afterwards pick up the engine's goal time
	f.engine.StartNewGame()

	s, _ := f.engine.CurrentSession()
	assert.Equal(t, 10.0, s.GoalTime)
}

func TestAttemptTimestamps(t *testing.T) {
	f := newFixture(t, nil)

	f.clock.Advance(90 * time.Second)

	p, err := f.engine.AddPlayerAttempt(7)
	require.NoError(t, err)

	assert.True(t, p.Attempts[0].At.Equal(epoch.Add(90*time.Second)))
	assert.Equal(t, time.UTC, p.Attempts[0].At.Location())
}

func TestMaxSessions(t *testing.T) {
	const maxSessions = 3

	f := newFixture(t, nil, WithMaxSessions(maxSessions))
	rng := rand.New(rand.NewPCG(42, 42))

	newest, _ := f.engine.CurrentSession()

	for i := range 200 {
		switch rng.IntN(3) {
		case 0:
			f.engine.StartNewGame()

			newest, _ = f.engine.CurrentSession()
		case 1:
			_, err := f.engine.StartNextPlayer()
			require.NoError(t, err)
		case 2:
			_, err := f.engine.AddPlayerAttempt(rng.Float64() * 16)
			require.NoError(t, err)
		}

		sessions := f.engine.Sessions()
		require.LessOrEqual(t, len(sessions), maxSessions, "step %d", i)
		require.Equal(t, newest.ID, sessions[0].ID, "step %d", i)
	}

	assertPersisted(t, f)
}

func TestInitTruncatesToMaxSessions(t *testing.T) {
	f := newFixture(t, seedSessions(5), WithMaxSessions(3))

	sessions := f.engine.Sessions()
	require.Len(t, sessions, 3)
	assert.Equal(t, "seed-0", sessions[0].ID)
	assert.Equal(t, "seed-2", sessions[2].ID)

	assertPersisted(t, f)
}

func TestInitResumesMostRecentSession(t *testing.T) {
	seed := seedSessions(2)
	seed[0].Players = append(seed[0].Players, models.PlayerRecord{
		ID:       "last",
		Name:     "Blaze",
		Color:    "#FFCA3A",
		Attempts: []models.Attempt{},
	})

	f := newFixture(t, seed)

	s, ok := f.engine.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, "seed-0", s.ID)

	p, ok := f.engine.CurrentPlayer()
	require.True(t, ok)
	assert.Equal(t, "last", p.ID)
}

func TestInitSessionWithoutPlayers(t *testing.T) {
	seed := seedSessions(2)
	seed[0].Players = []models.PlayerRecord{}

	f := newFixture(t, seed)

	s, ok := f.engine.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, "seed-0", s.ID)
	require.Len(t, s.Players, 1)

	p, ok := f.engine.CurrentPlayer()
	require.True(t, ok)
	assert.Equal(t, s.Players[0].ID, p.ID)

	_, err := f.engine.AddPlayerAttempt(8)
	require.NoError(t, err)

	assertPersisted(t, f)
}

func TestContractViolations(t *testing.T) {
	var e Engine

	_, err := e.AddPlayerAttempt(8)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = e.StartNextPlayer()
	assert.ErrorIs(t, err, ErrNoActiveSession)

	assert.Empty(t, e.Rankings())
	assert.Zero(t, e.Rank("nobody"))

	f := newFixture(t, nil)
	f.engine.playerID = "gone"

	_, err = f.engine.AddPlayerAttempt(8)
	assert.ErrorIs(t, err, ErrNoActivePlayer)
}

func TestInvalidElapsed(t *testing.T) {
	f := newFixture(t, nil)

	for _, elapsed := range []float64{-0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := f.engine.AddPlayerAttempt(elapsed)
		assert.ErrorIs(t, err, ErrInvalidElapsed, "elapsed %v", elapsed)
	}

	p, _ := f.engine.CurrentPlayer()
	assert.Empty(t, p.Attempts)
}

func TestRankingsIdempotent(t *testing.T) {
	f := newFixture(t, nil)

	for _, elapsed := range []float64{9, 8.1, 7.5} {
		_, err := f.engine.AddPlayerAttempt(elapsed)
		require.NoError(t, err)

		_, err = f.engine.StartNextPlayer()
		require.NoError(t, err)
	}

	first := f.engine.Rankings()
	second := f.engine.Rankings()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("rankings changed between calls (-first +second):\n%s", diff)
	}

	// the unranked newest player is excluded
	assert.Len(t, first, 3)
}

func TestRankPlayers(t *testing.T) {
	player := func(id string, diffs ...float64) models.PlayerRecord {
		p := models.PlayerRecord{ID: id}
		for _, d := range diffs {
			p.Attempts = append(p.Attempts, models.Attempt{Diff: d})
		}

		return p
	}

	cases := []struct {
		name    string
		players []models.PlayerRecord
		want    []string
	}{
		{
			name: "no attempts",
			players: []models.PlayerRecord{
				player("a"),
				player("b"),
			},
			want: []string{},
		},
		{
			name: "ranked by best attempt",
			players: []models.PlayerRecord{
				player("a", 0.9, 0.1),
				player("b", 0.3),
				player("c", 0.5, 0.2),
			},
			want: []string{"a", "c", "b"},
		},
		{
			name: "ties keep turn order",
			players: []models.PlayerRecord{
				player("a", 0.4),
				player("b", 0.2),
				player("c", 0.4),
				player("d", 0.2),
				player("e"),
			},
			want: []string{"b", "d", "a", "c"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RankPlayers(tc.players)

			ids := make([]string, 0, len(got))
			for i := range got {
				ids = append(ids, got[i].ID)
			}

			assert.Equal(t, tc.want, ids)

			for i := 1; i < len(got); i++ {
				assert.LessOrEqual(t, got[i-1].BestDiff(), got[i].BestDiff())
			}
		})
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	f := newFixture(t, nil)

	p, err := f.engine.AddPlayerAttempt(8)
	require.NoError(t, err)

	p.Attempts[0].Diff = 99
	p.Name = "Mallory"

	cur, _ := f.engine.CurrentPlayer()
	assert.NotEqual(t, "Mallory", cur.Name)
	assert.False(t, slices.ContainsFunc(cur.Attempts, func(a models.Attempt) bool {
		return a.Diff == 99
	}))

	sessions := f.engine.Sessions()
	sessions[0].Players = nil

	s, _ := f.engine.CurrentSession()
	assert.Len(t, s.Players, 1)
}

func TestNameCollisionsWithinSession(t *testing.T) {
	f := newFixture(t, nil)

	for range len(testNames) - 1 {
		_, err := f.engine.StartNextPlayer()
		require.NoError(t, err)
	}

	s, _ := f.engine.CurrentSession()

	names := map[string]bool{}
	colors := map[string]bool{}

	for _, p := range s.Players {
		assert.False(t, names[p.Name], "duplicate name %s", p.Name)
		assert.False(t, colors[p.Color], "duplicate color %s", p.Color)

		names[p.Name] = true
		colors[p.Color] = true
	}

	p, err := f.engine.StartNextPlayer()
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Player %d", len(testNames)+1), p.Name)
}

func TestErrorsAreSentinels(t *testing.T) {
	err := ErrNoActivePlayer.Fmt("abc")
	assert.True(t, errors.Is(err, ErrNoActivePlayer))
	assert.Contains(t, err.Error(), "abc")
}
