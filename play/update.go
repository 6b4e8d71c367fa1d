package play

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/goaltime/internal/flow"
	"github.com/ayoisaiah/goaltime/report"
)

func (g *Game) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if g.debug {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tickMsg:
		if g.ctrl.State() == flow.Running && msg.run == g.run.Load() {
			g.elapsed = msg.elapsed
		}

		return g, g.waitForTick()

	case celebrationDoneMsg:
		if msg.id == g.celebrationID {
			g.celebrating = false
		}

		return g, nil

	case tea.WindowSizeMsg:
		g.width = min(msg.Width-padding*2, maxWidth)
		g.help.Width = g.width

		return g, nil
	}

	if g.confirm != nil {
		return g.updateConfirm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return g.handleKeyPress(msg)
	}

	return g, nil
}

func (g *Game) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, g.keys.quit):
		g.Close()

		return g, tea.Quit

	case key.Matches(msg, g.keys.newGame):
		// starting over from the play view throws away the current game
		if g.view == playView {
			return g, g.openConfirm(confirmNewGame)
		}

		g.newGame()

		return g, nil

	case key.Matches(msg, g.keys.records):
		g.view = recordsView

		return g, nil

	case key.Matches(msg, g.keys.back):
		g.view = playView

		return g, nil

	case key.Matches(msg, g.keys.reset):
		if g.view != recordsView {
			return g, nil
		}

		return g, g.openConfirm(confirmReset)

	case key.Matches(msg, g.keys.action):
		if g.view != playView {
			return g, nil
		}

		return g.action()
	}

	return g, nil
}

// action advances the turn and reacts to the outcome.
func (g *Game) action() (tea.Model, tea.Cmd) {
	o, err := g.ctrl.Action()
	if err != nil {
		g.err = err
		g.Close()

		return g, report.Fatal(err)
	}

	g.outcome = o

	g.nextRun()

	switch o.State {
	case flow.Ready, flow.Running:
		g.elapsed = 0
	case flow.Result:
		g.elapsed = o.Elapsed

		if o.NewBest {
			return g, g.startCelebration()
		}
	}

	return g, nil
}

func (g *Game) startCelebration() tea.Cmd {
	if g.celebrationDuration <= 0 {
		return nil
	}

	g.celebrationID++
	g.celebrating = true

	id := g.celebrationID

	return tea.Tick(g.celebrationDuration, func(time.Time) tea.Msg {
		return celebrationDoneMsg{id: id}
	})
}

func (g *Game) newGame() {
	g.engine.StartNewGame()
	g.resetTurn()
	g.view = playView
}

func (g *Game) resetAll() {
	g.engine.ResetAllData()
	g.resetTurn()
}

func (g *Game) resetTurn() {
	g.ctrl.Reset()
	g.nextRun()
	g.outcome = flow.Outcome{}
	g.elapsed = 0
	g.celebrating = false
}

func (g *Game) openConfirm(kind confirmKind) tea.Cmd {
	title := "Start a new game?"
	desc := "The current game ends and a fresh one begins."

	if kind == confirmReset {
		title = "Delete all records?"
		desc = "Every saved game is removed. This cannot be undone."
	}

	g.pending = kind
	g.confirmed = false

	g.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(desc).
				Affirmative("Yes").
				Negative("No").
				Value(&g.confirmed),
		),
	).WithShowHelp(false)

	return g.confirm.Init()
}

func (g *Game) closeConfirm() {
	g.confirm = nil
	g.pending = confirmNone
}

func (g *Game) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case k.String() == "ctrl+c":
			g.Close()
			return g, tea.Quit
		case key.Matches(k, g.keys.back):
			g.closeConfirm()
			return g, nil
		}
	}

	form, cmd := g.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		g.confirm = f
	}

	switch g.confirm.State {
	case huh.StateCompleted:
		kind, ok := g.pending, g.confirmed
		g.closeConfirm()

		if ok {
			g.apply(kind)
		}

		return g, nil
	case huh.StateAborted:
		g.closeConfirm()

		return g, nil
	}

	return g, cmd
}

func (g *Game) apply(kind confirmKind) {
	switch kind {
	case confirmNewGame:
		g.newGame()
	case confirmReset:
		g.resetAll()
	}
}
