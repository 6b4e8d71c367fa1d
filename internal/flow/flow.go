// Package flow drives a turn: Ready, then Running while the stopwatch counts,
// then Result once the attempt is recorded, then back to Ready for the next
// player.
package flow

import (
	"github.com/ayoisaiah/goaltime/internal/models"
)

type State int

const (
	Ready State = iota
	Running
	Result
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Result:
		return "result"
	}

	return "unknown"
}

// Engine is the subset of the game engine the controller drives.
type Engine interface {
	AddPlayerAttempt(elapsed float64) (models.PlayerRecord, error)
	StartNextPlayer() (models.PlayerRecord, error)
	Rank(playerID string) int
}

type Stopwatch interface {
	Start()
	Stop() float64
	Reset()
}

// Celebrator is notified when a player takes first place with their best
// attempt.
type Celebrator interface {
	Celebrate(o Outcome)
}

// CelebratorFunc adapts a function to the Celebrator interface.
type CelebratorFunc func(o Outcome)

func (f CelebratorFunc) Celebrate(o Outcome) {
	f(o)
}

// Outcome describes the controller after an action. Player, Rank, Elapsed and
// NewBest are only set when State is Result.
type Outcome struct {
	Player  models.PlayerRecord
	Elapsed float64
	Rank    int
	State   State
	NewBest bool
}

type Controller struct {
	engine    Engine
	stopwatch Stopwatch
	celebrate Celebrator
	last      Outcome
	state     State
}

// New returns a controller in the Ready state. celebrate may be nil.
func New(engine Engine, sw Stopwatch, celebrate Celebrator) *Controller {
	return &Controller{
		engine:    engine,
		stopwatch: sw,
		celebrate: celebrate,
		state:     Ready,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Last returns the outcome of the most recent action.
func (c *Controller) Last() Outcome {
	return c.last
}

// Action advances the state machine by one step. On error the state is left
// unchanged.
func (c *Controller) Action() (Outcome, error) {
	var (
		o   Outcome
		err error
	)

	switch c.state {
	case Ready:
		o = c.start()
	case Running:
		o, err = c.stop()
	case Result:
		o, err = c.next()
	}

	if err != nil {
		return c.last, err
	}

	c.state = o.State
	c.last = o

	return o, nil
}

func (c *Controller) start() Outcome {
	c.stopwatch.Reset()
	c.stopwatch.Start()

	return Outcome{State: Running}
}

func (c *Controller) stop() (Outcome, error) {
	elapsed := c.stopwatch.Stop()

	p, err := c.engine.AddPlayerAttempt(elapsed)
	if err != nil {
		return Outcome{}, err
	}

	rank := c.engine.Rank(p.ID)

	o := Outcome{
		State:   Result,
		Player:  p,
		Rank:    rank,
		Elapsed: elapsed,
		NewBest: rank == 1 && p.LastIsPersonalBest(),
	}

	if o.NewBest && c.celebrate != nil {
		c.celebrate.Celebrate(o)
	}

	return o, nil
}

func (c *Controller) next() (Outcome, error) {
	_, err := c.engine.StartNextPlayer()
	if err != nil {
		return Outcome{}, err
	}

	c.stopwatch.Reset()

	return Outcome{State: Ready}, nil
}

// Reset abandons the current turn and returns to Ready. It is used when a new
// game starts or the data is cleared.
func (c *Controller) Reset() {
	c.stopwatch.Reset()
	c.state = Ready
	c.last = Outcome{State: Ready}
}
