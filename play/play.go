// Package play is the interactive game: a play view where players take turns
// stopping the clock and a records view listing past games.
package play

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/goaltime/internal/flow"
	"github.com/ayoisaiah/goaltime/internal/game"
	"github.com/ayoisaiah/goaltime/internal/stopwatch"
)

type view int

const (
	playView view = iota
	recordsView
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmNewGame
	confirmReset
)

type (
	// tickMsg is a stopwatch reading from the turn numbered run
	tickMsg struct {
		run     uint64
		elapsed float64
	}
	celebrationDoneMsg struct {
		id int
	}
)

// Options configures the game model.
type Options struct {
	Engine *game.Engine
	// Celebrator may be nil
	Celebrator          flow.Celebrator
	Clock               clockwork.Clock
	TickInterval        time.Duration
	CelebrationDuration time.Duration
	DarkTheme           bool
	Debug               bool
}

// Game is the bubbletea model.
type Game struct {
	err                 error
	engine              *game.Engine
	ctrl                *flow.Controller
	stopwatch           *stopwatch.Stopwatch
	confirm             *huh.Form
	ticks               chan tickMsg
	run                 atomic.Uint64
	keys                keymap
	styles              styles
	help                help.Model
	outcome             flow.Outcome
	elapsed             float64
	celebrationDuration time.Duration
	celebrationID       int
	width               int
	view                view
	pending             confirmKind
	celebrating         bool
	confirmed           bool
	debug               bool
}

// New returns the game model in the Ready state on the play view.
func New(opts Options) *Game {
	g := &Game{
		engine:              opts.Engine,
		ticks:               make(chan tickMsg, 1),
		keys:                defaultKeymap,
		styles:              newStyles(opts.DarkTheme),
		help:                help.New(),
		celebrationDuration: opts.CelebrationDuration,
		debug:               opts.Debug,
		view:                playView,
	}

	g.stopwatch = stopwatch.New(opts.Clock, opts.TickInterval, g.sink)
	g.ctrl = flow.New(opts.Engine, g.stopwatch, opts.Celebrator)

	return g
}

// sink keeps only the latest tick so the stopwatch goroutine never blocks.
func (g *Game) sink(v float64) {
	select {
	case <-g.ticks:
	default:
	}

	select {
	case g.ticks <- tickMsg{run: g.run.Load(), elapsed: v}:
	default:
	}
}

// nextRun discards readings taken before the call, including a buffered tick
// and any already handed to the runtime.
func (g *Game) nextRun() {
	select {
	case <-g.ticks:
	default:
	}

	g.run.Add(1)
}

func (g *Game) waitForTick() tea.Cmd {
	return func() tea.Msg {
		return <-g.ticks
	}
}

func (g *Game) Init() tea.Cmd {
	return g.waitForTick()
}

// Err returns the error that ended the program, if any.
func (g *Game) Err() error {
	return g.err
}

// Close stops the stopwatch goroutine.
func (g *Game) Close() {
	g.stopwatch.Reset()
}
