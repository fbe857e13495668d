package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devRabbiz/waveboxapp/internal/keymap"
	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
	"github.com/devRabbiz/waveboxapp/ui/help"
	"github.com/devRabbiz/waveboxapp/ui/styles"
)

// ExecuteAndCloseMsg carries the action of the activated item
type ExecuteAndCloseMsg struct {
	ActionMsg tea.Msg
}

// CloseMenuMsg is sent when the menu is dismissed without activating anything
type CloseMenuMsg struct{}

const submenuIndicator = "▸"

// level is one open menu: the root or a submenu
type level struct {
	title  string
	items  []contextmenu.Node
	cursor int
}

type Model struct {
	levels   []level
	position contextmenu.Position
	width    int
	height   int
	styles   menuStyles
	visible  bool
	showHelp bool
}

type menuStyles struct {
	Border   lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Role     lipgloss.Style
	Rule     lipgloss.Style
	Footer   lipgloss.Style
}

func defaultMenuStyles() menuStyles {
	return menuStyles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Primary.GetForeground()).
			Padding(0, 1),
		Title:    styles.Primary.Bold(true),
		Item:     styles.Text,
		Selected: styles.Highlight,
		Disabled: styles.Overlay0,
		Role:     styles.Subtext0,
		Rule:     styles.Rule,
		Footer:   styles.Overlay1,
	}
}

// New creates a visible menu for t opened at pos
func New(t contextmenu.Template, pos contextmenu.Position, width, height int) Model {
	return Model{
		levels:   []level{newLevel("", t)},
		position: pos,
		width:    width,
		height:   height,
		styles:   defaultMenuStyles(),
		visible:  true,
	}
}

func newLevel(title string, items []contextmenu.Node) level {
	l := level{title: title, items: items, cursor: -1}
	for i, n := range items {
		if n.IsSelectable() {
			l.cursor = i
			break
		}
	}
	return l
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keymap.Up):
		m.move(-1)

	case key.Matches(msg, keymap.Down):
		m.move(1)

	case key.Matches(msg, keymap.Activate):
		return m.activate()

	case key.Matches(msg, keymap.Back):
		if len(m.levels) > 1 {
			m.levels = m.levels[:len(m.levels)-1]
		}

	case key.Matches(msg, keymap.Dismiss):
		m.visible = false
		return m, dispatch(CloseMenuMsg{})

	case key.Matches(msg, keymap.Help):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// move steps the cursor to the next selectable item in direction, wrapping around
func (m *Model) move(direction int) {
	l := &m.levels[len(m.levels)-1]
	if l.cursor < 0 {
		return
	}

	n := len(l.items)
	for i := 1; i <= n; i++ {
		next := ((l.cursor+direction*i)%n + n) % n
		if l.items[next].IsSelectable() {
			l.cursor = next
			return
		}
	}
}

func (m Model) activate() (Model, tea.Cmd) {
	node, ok := m.Selected()
	if !ok {
		return m, nil
	}

	if node.Kind == contextmenu.KindSubmenu {
		m.levels = append(m.levels, newLevel(node.Label, node.Items))
		return m, nil
	}

	var actionMsg tea.Msg
	switch {
	case node.Role != contextmenu.RoleNone:
		actionMsg = contextmenu.RoleMsg{Role: node.Role}
	case node.Action != nil:
		actionMsg = node.Action()
	default:
		return m, nil
	}

	m.visible = false
	return m, dispatch(ExecuteAndCloseMsg{ActionMsg: actionMsg})
}

func dispatch(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// Selected returns the item under the cursor
func (m Model) Selected() (contextmenu.Node, bool) {
	l := m.levels[len(m.levels)-1]
	if l.cursor < 0 {
		return contextmenu.Node{}, false
	}
	return l.items[l.cursor], true
}

// Depth is 1 at the root menu and grows with each open submenu
func (m Model) Depth() int {
	return len(m.levels)
}

// IsVisible returns whether the menu is visible
func (m Model) IsVisible() bool {
	return m.visible
}

func (m Model) View() string {
	if !m.visible {
		return ""
	}

	l := m.levels[len(m.levels)-1]

	var sections []string
	if l.title != "" {
		sections = append(sections, m.styles.Title.Render(l.title))
	}
	sections = append(sections, m.renderItems(l)...)

	bordered := m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	footer := m.renderFooter()
	content := lipgloss.JoinVertical(lipgloss.Left, bordered, footer)

	return m.place(content)
}

func (m Model) renderItems(l level) []string {
	labelWidth := 0
	for _, n := range l.items {
		labelWidth = max(labelWidth, lipgloss.Width(m.labelOf(n)))
	}

	rows := make([]string, 0, len(l.items))
	for i, n := range l.items {
		if n.IsSeparator() {
			rows = append(rows, m.styles.Rule.Render(strings.Repeat("─", labelWidth+2)))
			continue
		}

		label := m.labelOf(n)
		row := " " + label + strings.Repeat(" ", labelWidth-lipgloss.Width(label)) + " "

		switch {
		case !n.Enabled:
			row = m.styles.Disabled.Render(row)
		case i == l.cursor:
			row = m.styles.Selected.Render(row)
		default:
			row = m.styles.Item.Render(row)
		}

		rows = append(rows, row)
	}

	return rows
}

func (m Model) labelOf(n contextmenu.Node) string {
	if n.Kind == contextmenu.KindSubmenu {
		return n.Label + " " + submenuIndicator
	}
	return n.Label
}

func (m Model) renderFooter() string {
	if m.showHelp {
		return help.RenderHelpView(0, keymap.Menu())
	}

	footerText := "enter select • esc close • ? help"
	if len(m.levels) > 1 {
		footerText = "enter select • ← back • esc close"
	}

	return m.styles.Footer.Render(footerText)
}

// place offsets the menu to the interaction position, keeping it on screen
func (m Model) place(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}

	left := max(0, min(m.position.X, m.width-lipgloss.Width(content)))
	top := max(0, min(m.position.Y, m.height-lipgloss.Height(content)))

	return lipgloss.NewStyle().MarginLeft(left).MarginTop(top).Render(content)
}
