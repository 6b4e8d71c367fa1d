package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/goaltime/internal/game"
)

const dateFormat = "January 02, 2006 03:04 PM"

func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output records table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// SessionRows builds the leaderboard table of a session, header first.
func SessionRows(stats *game.SessionStats) [][]string {
	rows := [][]string{
		{"#", "PLAYER", "BEST", "AVERAGE", "ATTEMPTS"},
	}

	for _, p := range stats.Players {
		rows = append(rows, []string{
			Rank(p.Rank, strconv.Itoa(p.Rank)),
			Hex(p.Color, p.Name),
			fmt.Sprintf("%.3fs", p.Best),
			fmt.Sprintf("%.3fs", p.Average),
			strconv.Itoa(p.Attempts),
		})
	}

	return rows
}

// PrintSession writes a titled leaderboard for one session.
func PrintSession(w io.Writer, stats *game.SessionStats) {
	title := fmt.Sprintf(
		"%s (goal %.2fs)",
		stats.CreatedAt.Local().Format(dateFormat),
		stats.GoalTime,
	)

	fmt.Fprintln(w, Highlight(title))

	if len(stats.Players) == 0 {
		fmt.Fprintln(w, "No attempts recorded")
		fmt.Fprintln(w)

		return
	}

	PrintTable(SessionRows(stats), w)
}
