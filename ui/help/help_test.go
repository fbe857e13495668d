package help

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestRenderHelpView(t *testing.T) {
	t.Parallel()

	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	disabled.SetEnabled(false)

	out := RenderHelpView(40, []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		disabled,
	})

	assert.Contains(t, out, "enter")
	assert.Contains(t, out, "activate")
	assert.NotContains(t, out, "hidden")
}
