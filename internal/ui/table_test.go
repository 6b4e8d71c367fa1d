package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/goaltime/internal/game"
)

func TestSessionRows(t *testing.T) {
	stats := game.SessionStats{
		Players: []game.PlayerStats{
			{Name: "Comet", Color: "#8AC926", Rank: 1, Best: 0.1, Average: 0.1234, Attempts: 1},
			{Name: "Ace", Color: "bogus", Rank: 2, Best: 0.3, Average: 0.4, Attempts: 2},
		},
	}

	rows := SessionRows(&stats)

	for _, row := range rows {
		for i := range row {
			row[i] = pterm.RemoveColorFromString(row[i])
		}
	}

	assert.Equal(t, [][]string{
		{"#", "PLAYER", "BEST", "AVERAGE", "ATTEMPTS"},
		{"1", "Comet", "0.100s", "0.123s", "1"},
		{"2", "Ace", "0.300s", "0.400s", "2"},
	}, rows)
}

func TestPrintSessionEmpty(t *testing.T) {
	var buf bytes.Buffer

	PrintSession(&buf, &game.SessionStats{
		CreatedAt: time.Date(2025, 3, 14, 20, 0, 0, 0, time.Local),
		GoalTime:  8.15,
	})

	assert.Contains(t, buf.String(), "goal 8.15s")
	assert.Contains(t, buf.String(), "No attempts recorded")
}
