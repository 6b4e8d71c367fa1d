package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/goaltime/internal/flow"
	"github.com/ayoisaiah/goaltime/internal/game"
	"github.com/ayoisaiah/goaltime/internal/timeutil"
)

const dateFormat = "Jan 02, 2006 03:04 PM"

func (g *Game) headerView() string {
	var s strings.Builder

	s.WriteString(g.styles.title.Render("GOALTIME"))

	if sess, ok := g.engine.CurrentSession(); ok {
		s.WriteString(g.styles.hint.Render(fmt.Sprintf(
			"  goal %.2fs · game of %s",
			sess.GoalTime,
			sess.CreatedAt.Local().Format(dateFormat),
		)))
	}

	return s.String()
}

func (g *Game) buttonView() string {
	switch g.ctrl.State() {
	case flow.Running:
		return g.styles.running.Render("[ STOP! ]")
	case flow.Result:
		return g.styles.result.Render("[ NEXT PLAYER ]")
	}

	return g.styles.ready.Render("[ START ]")
}

// resultView is the card shown after an attempt.
func (g *Game) resultView() string {
	o := g.outcome

	last, ok := o.Player.LastAttempt()
	if !ok {
		return ""
	}

	goal := g.engine.GoalTime()
	if sess, ok := g.engine.CurrentSession(); ok {
		goal = sess.GoalTime
	}

	diffStyle := g.styles.bad
	if last.Diff < goodDiff {
		diffStyle = g.styles.good
	}

	var s strings.Builder

	s.WriteString(g.styles.player(o.Player.Name, o.Player.Color))
	s.WriteString("  " + g.styles.rank(o.Rank, fmt.Sprintf("#%d", o.Rank)))
	s.WriteString("\n")
	s.WriteString(g.styles.clock.Render(fmt.Sprintf("%.2fs", last.Elapsed)))
	s.WriteString("\n")
	s.WriteString(g.styles.hint.Render(fmt.Sprintf("goal %.2fs", goal)))
	s.WriteString("\n")
	s.WriteString(diffStyle.Render(timeutil.FormatDeviation(last.Elapsed, goal)))

	return g.styles.card.Render(s.String())
}

func (g *Game) playView() string {
	var s strings.Builder

	s.WriteString(g.headerView())
	s.WriteString("\n\n")

	if g.ctrl.State() == flow.Result {
		s.WriteString(g.resultView())
	} else {
		if p, ok := g.engine.CurrentPlayer(); ok {
			s.WriteString(g.styles.player(p.Name, p.Color))
			s.WriteString("\n")
		}

		s.WriteString(g.styles.clock.Render(timeutil.FormatStopwatch(g.elapsed)))
	}

	s.WriteString("\n\n")
	s.WriteString(g.buttonView())

	if g.celebrating {
		s.WriteString("\n\n")
		s.WriteString(g.styles.banner.Render("★ NEW RECORD ★"))
	}

	s.WriteString("\n\n" + g.help.ShortHelpView([]key.Binding{
		g.keys.action,
		g.keys.newGame,
		g.keys.records,
		g.keys.quit,
	}))

	return s.String()
}

func (g *Game) sessionView(stats *game.SessionStats) string {
	var s strings.Builder

	s.WriteString(g.styles.title.Render(stats.CreatedAt.Local().Format(dateFormat)))
	s.WriteString(g.styles.hint.Render(fmt.Sprintf("  goal %.2fs", stats.GoalTime)))
	s.WriteString("\n")

	if len(stats.Players) == 0 {
		s.WriteString(g.styles.hint.Render("no attempts"))
		return s.String()
	}

	for _, p := range stats.Players {
		s.WriteString(fmt.Sprintf(
			"%s %s  best %.3fs  avg %.3fs\n",
			g.styles.rank(p.Rank, fmt.Sprintf("%2d.", p.Rank)),
			g.styles.player(p.Name, p.Color),
			p.Best,
			p.Average,
		))
	}

	return strings.TrimSuffix(s.String(), "\n")
}

func (g *Game) recordsView() string {
	var s strings.Builder

	s.WriteString(g.styles.title.Render("RECORDS"))
	s.WriteString("\n\n")

	sessions := g.engine.Sessions()

	if len(sessions) == 0 {
		s.WriteString(g.styles.hint.Render("No saved games"))
	}

	for i := range sessions {
		stats := game.Stats(&sessions[i])

		s.WriteString(g.styles.card.Render(g.sessionView(&stats)))
		s.WriteString("\n")
	}

	s.WriteString("\n" + g.help.ShortHelpView([]key.Binding{
		g.keys.newGame,
		g.keys.reset,
		g.keys.back,
		g.keys.quit,
	}))

	return s.String()
}

func (g *Game) View() string {
	var view string

	switch g.view {
	case recordsView:
		view = g.recordsView()
	default:
		view = g.playView()
	}

	if g.confirm != nil {
		view += "\n\n" + g.confirm.View()
	}

	return g.styles.base.Render(view)
}
