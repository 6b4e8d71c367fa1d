// Package allocator picks display names and colours for new players
package allocator

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ayoisaiah/goaltime/internal/models"
)

// Allocator hands out a name and colour that no other player in the session
// uses, as long as the preset pools last.
type Allocator struct {
	rng    *rand.Rand
	names  []string
	colors []string
}

// New returns an allocator drawing from the given presets. A nil src seeds the
// generator randomly.
func New(names, colors []string, src rand.Source) *Allocator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &Allocator{
		names:  slices.Clone(names),
		colors: slices.Clone(colors),
		rng:    rand.New(src),
	}
}

// Allocate returns the name and colour for the next player of a session whose
// current players are given.
func (a *Allocator) Allocate(players []models.PlayerRecord) (name, color string) {
	usedNames := make(map[string]struct{}, len(players))
	usedColors := make(map[string]struct{}, len(players))

	for i := range players {
		usedNames[players[i].Name] = struct{}{}
		usedColors[players[i].Color] = struct{}{}
	}

	name, ok := a.pick(a.names, usedNames)
	if !ok {
		name = fmt.Sprintf("Player %d", len(players)+1)
	}

	color, ok = a.pick(a.colors, usedColors)
	if !ok {
		color = a.randomColor()
	}

	return name, color
}

// pick chooses uniformly among the presets not in used.
func (a *Allocator) pick(presets []string, used map[string]struct{}) (string, bool) {
	available := make([]string, 0, len(presets))

	for _, v := range presets {
		if _, taken := used[v]; !taken {
			available = append(available, v)
		}
	}

	if len(available) == 0 {
		return "", false
	}

	return available[a.rng.IntN(len(available))], true
}

// randomColor generates a bright colour that stays readable on both themes.
func (a *Allocator) randomColor() string {
	hue := a.rng.Float64() * 360
	saturation := 0.55 + a.rng.Float64()*0.35
	value := 0.75 + a.rng.Float64()*0.2

	return colorful.Hsv(hue, saturation, value).Hex()
}
