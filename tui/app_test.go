package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
	"github.com/devRabbiz/waveboxapp/tui/menu"
)

type recordingDispatcher struct {
	msgs []tea.Msg
	err  error
}

func (d *recordingDispatcher) Dispatch(msg tea.Msg) error {
	d.msgs = append(d.msgs, msg)
	return d.err
}

func template() contextmenu.Template {
	return contextmenu.NewBuilder(contextmenu.FeatureConfig{}).
		Build(contextmenu.InteractionContext{Position: contextmenu.Position{X: 7, Y: 8}})
}

// run feeds msg to the model and then every message its commands produce,
// stopping at tea.Quit
func run(t *testing.T, m Model, msgs ...tea.Msg) (Model, bool) {
	t.Helper()

	queue := msgs
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		next, cmd := m.Update(msg)
		m = next.(Model)

		if cmd == nil {
			continue
		}

		out := cmd()
		if _, ok := out.(tea.QuitMsg); ok {
			return m, true
		}
		queue = append(queue, out)
	}

	return m, false
}

func TestActivationRecordsAndQuits(t *testing.T) {
	t.Parallel()

	m := New(template(), contextmenu.Position{})

	m, quit := run(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, quit)

	expected := contextmenu.InspectElementMsg{X: 7, Y: 8}
	assert.Equal(t, Result{Activated: true, Action: expected}, m.Result())
}

func TestActionIsNotPerformedWhileRunning(t *testing.T) {
	t.Parallel()

	d := &recordingDispatcher{}
	m, quit := run(t, New(template(), contextmenu.Position{}), tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, quit)
	assert.Empty(t, d.msgs)

	result := m.Result().Perform(d)
	assert.Equal(t, []tea.Msg{contextmenu.OpenSettingsMsg{}}, d.msgs)
	assert.NoError(t, result.Err)
}

func TestDismissQuitsWithoutAction(t *testing.T) {
	t.Parallel()

	d := &recordingDispatcher{}
	m, quit := run(t, New(template(), contextmenu.Position{}), tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, quit)

	result := m.Result().Perform(d)
	assert.Empty(t, d.msgs)
	assert.False(t, result.Activated)
}

func TestForceQuit(t *testing.T) {
	t.Parallel()

	m, quit := run(t, New(template(), contextmenu.Position{}), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, quit)
	assert.False(t, m.Result().Activated)
}

func TestPerformReportsDispatchError(t *testing.T) {
	t.Parallel()

	failure := errors.New("no browser")
	d := &recordingDispatcher{err: failure}

	m, quit := run(t, New(template(), contextmenu.Position{}), menu.ExecuteAndCloseMsg{ActionMsg: contextmenu.OpenSettingsMsg{}})
	require.True(t, quit)

	result := m.Result().Perform(d)
	assert.True(t, result.Activated)
	assert.ErrorIs(t, result.Err, failure)
}

func TestPerformWithoutDispatcher(t *testing.T) {
	t.Parallel()

	r := Result{Activated: true, Action: contextmenu.OpenSettingsMsg{}}
	assert.Equal(t, r, r.Perform(nil))
}

func TestView(t *testing.T) {
	t.Parallel()

	m := New(template(), contextmenu.Position{})
	assert.Contains(t, m.View(), contextmenu.LabelSettings)
}
