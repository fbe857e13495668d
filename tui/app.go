package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devRabbiz/waveboxapp/internal/keymap"
	"github.com/devRabbiz/waveboxapp/internal/logging"
	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
	"github.com/devRabbiz/waveboxapp/tui/menu"
)

// Dispatcher performs the action of an activated item
type Dispatcher interface {
	Dispatch(msg tea.Msg) error
}

// Result reports how a menu session ended
type Result struct {
	Activated bool
	Action    tea.Msg
	Err       error
}

// Perform hands the activated action to d. It must run after the program has
// released the terminal, since actions may write to stdout.
func (r Result) Perform(d Dispatcher) Result {
	if !r.Activated || d == nil {
		return r
	}

	r.Err = d.Dispatch(r.Action)
	if r.Err != nil {
		logging.Logger.Error("Menu action failed", "error", r.Err)
	}

	return r
}

type Model struct {
	menu   menu.Model
	result Result
}

// New shows t at pos. The activated action is recorded, not performed.
func New(t contextmenu.Template, pos contextmenu.Position) Model {
	return Model{
		menu: menu.New(t, pos, 0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keymap.ForceQuit) {
			return m, tea.Quit
		}

	case menu.ExecuteAndCloseMsg:
		m.result = Result{Activated: true, Action: msg.ActionMsg}
		return m, tea.Quit

	case menu.CloseMenuMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.menu.View()
}

// Result returns the outcome once the program has finished
func (m Model) Result() Result {
	return m.result
}
