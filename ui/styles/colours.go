package styles

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// colour picks the Latte flavour on light terminals and Mocha on dark ones
func colour(pick func(catppuccin.Flavor) catppuccin.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: pick(catppuccin.Latte).Hex,
		Dark:  pick(catppuccin.Mocha).Hex,
	}
}

var (
	Text     = lipgloss.NewStyle().Foreground(colour(catppuccin.Flavor.Text))
	Primary  = lipgloss.NewStyle().Foreground(colour(catppuccin.Flavor.Sapphire))
	Accent   = lipgloss.NewStyle().Foreground(colour(catppuccin.Flavor.Teal))
	Error    = lipgloss.NewStyle().Foreground(colour(catppuccin.Flavor.Red))
	Info     = lipgloss.NewStyle().Foreground(colour(catppuccin.Flavor.Blue))
	Subtext0 = lipgloss.NewStyle().Foreground(colour(catppuccin.Flavor.Subtext0))
	Overlay0 = lipgloss.NewStyle().Foreground(colour(catppuccin.Flavor.Overlay0))
	Overlay1 = lipgloss.NewStyle().Foreground(colour(catppuccin.Flavor.Overlay1))

	Highlight = lipgloss.NewStyle().
			Foreground(colour(catppuccin.Flavor.Text)).
			Background(colour(catppuccin.Flavor.Surface0)).
			Bold(true)
)
