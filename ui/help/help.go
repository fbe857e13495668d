package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/devRabbiz/waveboxapp/ui/styles"
)

// RenderHelpView renders enabled key bindings with their descriptions.
// A zero width leaves the block unpadded to its content width.
func RenderHelpView(width int, keys []key.Binding) string {
	var sb strings.Builder

	enabledBindings := make([]key.Binding, 0, len(keys))
	maxKeyWidth := 0

	for _, binding := range keys {
		if !binding.Enabled() {
			continue
		}

		enabledBindings = append(enabledBindings, binding)
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(binding.Help().Key))
	}

	for _, binding := range enabledBindings {
		keyText := binding.Help().Key
		padding := strings.Repeat(" ", maxKeyWidth-lipgloss.Width(keyText)+2)

		sb.WriteString(fmt.Sprintf("• %s%s%s\n",
			styles.Info.Render(keyText),
			padding,
			styles.Text.Render(binding.Help().Desc),
		))
	}

	style := lipgloss.NewStyle().Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}

	return style.Render(strings.TrimRight(sb.String(), "\n"))
}
