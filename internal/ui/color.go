package ui

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pterm/pterm"
)

var DarkTheme bool

var (
	gold   = pterm.NewRGB(255, 202, 58)
	silver = pterm.NewRGB(192, 192, 192)
	bronze = pterm.NewRGB(205, 127, 50)
)

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Hex colours a with a #RRGGBB player colour. Invalid codes leave it as is.
func Hex(hex string, a any) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return pterm.Sprint(a)
	}

	r, g, b := c.RGB255()

	return pterm.NewRGB(r, g, b).Sprint(a)
}

// Rank colours a medal position: gold, silver and bronze for the podium.
func Rank(rank int, a any) string {
	switch rank {
	case 1:
		return gold.Sprint(a)
	case 2:
		return silver.Sprint(a)
	case 3:
		return bronze.Sprint(a)
	}

	return Highlight(a)
}
