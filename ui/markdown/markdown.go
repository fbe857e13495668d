package markdown

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const defaultWordWrap = 80

func styleName() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}

	return "light"
}

type Model struct {
	renderer *glamour.TermRenderer
	error    error
}

// New creates a renderer matching the terminal background. A non-positive
// width uses the default word wrap.
func New(width int) Model {
	if width <= 0 {
		width = defaultWordWrap
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName()),
		glamour.WithWordWrap(width),
	)

	return Model{
		renderer: renderer,
		error:    err,
	}
}

// Render renders markdown
func (m Model) Render(markdown string) (string, error) {
	if m.error != nil {
		return "", m.error
	}

	return m.renderer.Render(markdown)
}
