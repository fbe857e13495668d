package contextmenu

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action messages are handed to the dispatcher when an item is activated.
// They carry everything the dispatcher needs and nothing else.

// ActionMsg is implemented by every action message
type ActionMsg interface {
	ActionKind() string
}

// Spelling actions
type (
	ReplaceMisspellingMsg struct {
		Suggestion string `json:"suggestion"`
	}
	AddCustomWordMsg struct {
		Word string `json:"word"`
	}
)

// Link and search actions
type (
	OpenURLMsg struct {
		URL        string `json:"url"`
		Background bool   `json:"background,omitempty"`
	}
	CopyTextMsg struct {
		Text string `json:"text"`
	}
)

// Current page actions. The URL is read from the surface on activation.
type (
	CopyCurrentURLMsg  struct{}
	OpenCurrentPageMsg struct{}
)

// Application actions
type (
	OpenSettingsMsg   struct{}
	InspectElementMsg struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
)

// RoleMsg is emitted by presenters when a role item is activated
type RoleMsg struct {
	Role Role `json:"role"`
}

func (ReplaceMisspellingMsg) ActionKind() string { return "replace-misspelling" }
func (AddCustomWordMsg) ActionKind() string      { return "add-custom-word" }
func (OpenURLMsg) ActionKind() string            { return "open-url" }
func (CopyTextMsg) ActionKind() string           { return "copy-text" }
func (CopyCurrentURLMsg) ActionKind() string     { return "copy-current-url" }
func (OpenCurrentPageMsg) ActionKind() string    { return "open-current-page" }
func (OpenSettingsMsg) ActionKind() string       { return "open-settings" }
func (InspectElementMsg) ActionKind() string     { return "inspect-element" }
func (RoleMsg) ActionKind() string               { return "role" }

func dispatch(msg ActionMsg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

func ReplaceMisspellingCmd(suggestion string) tea.Cmd {
	return dispatch(ReplaceMisspellingMsg{Suggestion: suggestion})
}

func AddCustomWordCmd(word string) tea.Cmd {
	return dispatch(AddCustomWordMsg{Word: word})
}

func OpenURLCmd(url string, background bool) tea.Cmd {
	return dispatch(OpenURLMsg{URL: url, Background: background})
}

func CopyTextCmd(text string) tea.Cmd {
	return dispatch(CopyTextMsg{Text: text})
}

func CopyCurrentURLCmd() tea.Msg  { return CopyCurrentURLMsg{} }
func OpenCurrentPageCmd() tea.Msg { return OpenCurrentPageMsg{} }
func OpenSettingsCmd() tea.Msg    { return OpenSettingsMsg{} }

func InspectElementCmd(pos Position) tea.Cmd {
	return dispatch(InspectElementMsg{X: pos.X, Y: pos.Y})
}
