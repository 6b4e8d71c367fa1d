package play

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 60
	goodDiff = 0.1
)

type styles struct {
	base      lipgloss.Style
	title     lipgloss.Style
	hint      lipgloss.Style
	clock     lipgloss.Style
	card      lipgloss.Style
	good      lipgloss.Style
	bad       lipgloss.Style
	banner    lipgloss.Style
	ready     lipgloss.Style
	running   lipgloss.Style
	result    lipgloss.Style
	rankOther lipgloss.Color
}

var rankColors = map[int]lipgloss.Color{
	1: lipgloss.Color("#FFCA3A"),
	2: lipgloss.Color("#C0C0C0"),
	3: lipgloss.Color("#CD7F32"),
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("#FFFFFF")
	muted := lipgloss.Color("#A0A0A0")

	if !dark {
		fg = lipgloss.Color("#000000")
		muted = lipgloss.Color("#5C5C5C")
	}

	return styles{
		base:  lipgloss.NewStyle().Padding(1, padding),
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6F91")),
		hint:  lipgloss.NewStyle().Foreground(muted),
		clock: lipgloss.NewStyle().Bold(true).Foreground(fg).Padding(1, 0),
		card: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(0, padding),
		good:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ADE80")),
		bad:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F87171")),
		banner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#FFCA3A")).Padding(0, 1),
		ready:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ADE80")),
		running:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		result:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")),
		rankOther: fg,
	}
}

// player renders a name on the player's own colour.
func (s styles) player(name, color string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(name)
}

func (s styles) rank(rank int, text string) string {
	c, ok := rankColors[rank]
	if !ok {
		c = s.rankOther
	}

	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(text)
}
