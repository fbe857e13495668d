package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
)

var (
	down     = tea.KeyMsg{Type: tea.KeyDown}
	up       = tea.KeyMsg{Type: tea.KeyUp}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	left     = tea.KeyMsg{Type: tea.KeyLeft}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	question = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}
	j        = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
)

func testTemplate() contextmenu.Template {
	return contextmenu.Template{
		contextmenu.NewSubmenu("English", []contextmenu.Node{
			contextmenu.NewItem("the", contextmenu.ReplaceMisspellingCmd("the")),
			contextmenu.NewItem("tea", contextmenu.ReplaceMisspellingCmd("tea")),
		}),
		contextmenu.Separator(),
		contextmenu.NewRoleItem("Undo", contextmenu.RoleUndo, false),
		contextmenu.NewRoleItem("Redo", contextmenu.RoleRedo, true),
		contextmenu.Separator(),
		contextmenu.NewItem("Inspect", contextmenu.InspectElementCmd(contextmenu.Position{X: 1, Y: 2})),
	}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func selectedLabel(t *testing.T, m Model) string {
	t.Helper()

	n, ok := m.Selected()
	require.True(t, ok)
	return n.Label
}

func TestNavigationSkipsSeparatorsAndDisabledItems(t *testing.T) {
	t.Parallel()

	m := New(testTemplate(), contextmenu.Position{}, 80, 24)
	assert.Equal(t, "English", selectedLabel(t, m))

	tests := []struct {
		key      tea.KeyMsg
		expected string
	}{
		{down, "Redo"},
		{j, "Inspect"},
		{down, "English"},
		{up, "Inspect"},
		{up, "Redo"},
	}

	for _, tt := range tests {
		m, _ = press(t, m, tt.key)
		assert.Equal(t, tt.expected, selectedLabel(t, m))
	}
}

func TestActivateItemInSubmenu(t *testing.T) {
	t.Parallel()

	m := New(testTemplate(), contextmenu.Position{}, 80, 24)

	m, cmd := press(t, m, enter)
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.Depth())
	assert.Equal(t, "the", selectedLabel(t, m))

	m, cmd = press(t, m, down, enter)
	require.NotNil(t, cmd)
	assert.Equal(t, ExecuteAndCloseMsg{ActionMsg: contextmenu.ReplaceMisspellingMsg{Suggestion: "tea"}}, cmd())
	assert.False(t, m.IsVisible())
	assert.Empty(t, m.View())

	_, cmd = press(t, m, enter)
	assert.Nil(t, cmd, "a closed menu activates nothing")
}

func TestActivateRoleItem(t *testing.T) {
	t.Parallel()

	m := New(testTemplate(), contextmenu.Position{}, 80, 24)

	_, cmd := press(t, m, down, enter)
	require.NotNil(t, cmd)
	assert.Equal(t, ExecuteAndCloseMsg{ActionMsg: contextmenu.RoleMsg{Role: contextmenu.RoleRedo}}, cmd())
}

func TestActivateActionItem(t *testing.T) {
	t.Parallel()

	m := New(testTemplate(), contextmenu.Position{}, 80, 24)

	_, cmd := press(t, m, up, enter)
	require.NotNil(t, cmd)
	assert.Equal(t, ExecuteAndCloseMsg{ActionMsg: contextmenu.InspectElementMsg{X: 1, Y: 2}}, cmd())
}

func TestBack(t *testing.T) {
	t.Parallel()

	m := New(testTemplate(), contextmenu.Position{}, 80, 24)

	m, _ = press(t, m, enter)
	assert.Equal(t, 2, m.Depth())

	m, _ = press(t, m, left)
	assert.Equal(t, 1, m.Depth())
	assert.Equal(t, "English", selectedLabel(t, m))

	m, cmd := press(t, m, left)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Depth())
	assert.True(t, m.IsVisible())
}

func TestDismiss(t *testing.T) {
	t.Parallel()

	m := New(testTemplate(), contextmenu.Position{}, 80, 24)

	m, cmd := press(t, m, esc)
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMenuMsg{}, cmd())
	assert.False(t, m.IsVisible())
}

func TestPlaceholderSubmenu(t *testing.T) {
	t.Parallel()

	tmpl := contextmenu.Template{
		contextmenu.NewSubmenu("Deutsch", contextmenu.RenderSuggestions(nil)),
		contextmenu.NewItem("Inspect", contextmenu.InspectElementCmd(contextmenu.Position{})),
	}

	m := New(tmpl, contextmenu.Position{}, 80, 24)

	m, _ = press(t, m, enter)
	assert.Equal(t, 2, m.Depth())

	_, ok := m.Selected()
	assert.False(t, ok)

	m, cmd := press(t, m, down, enter)
	assert.Nil(t, cmd)
	assert.True(t, m.IsVisible())
}

func TestView(t *testing.T) {
	t.Parallel()

	m := New(testTemplate(), contextmenu.Position{X: 5, Y: 3}, 80, 24)

	view := m.View()
	assert.Contains(t, view, "English "+submenuIndicator)
	assert.Contains(t, view, "Undo")
	assert.Contains(t, view, "Inspect")
	assert.Contains(t, view, "─")
	assert.Contains(t, view, "? help")

	m, _ = press(t, m, question)
	assert.Contains(t, m.View(), "previous item")

	m, _ = press(t, m, enter)
	assert.Contains(t, m.View(), "English")
	assert.Contains(t, m.View(), "the")
}
