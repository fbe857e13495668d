package contextmenu

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrLeadingSeparator   = errors.New("template starts with a separator")
	ErrTrailingSeparator  = errors.New("template ends with a separator")
	ErrAdjacentSeparators = errors.New("template has adjacent separators")
)

// Kind discriminates the nodes of a template
type Kind int

const (
	KindItem Kind = iota
	KindSubmenu
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindSubmenu:
		return "submenu"
	case KindSeparator:
		return "separator"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Role is a host-recognised edit operation. Items carrying a role have no
// action of their own; the host supplies the behaviour.
type Role int

const (
	RoleNone Role = iota
	RoleUndo
	RoleRedo
	RoleCut
	RoleCopy
	RolePaste
	RolePasteAndMatchStyle
	RoleSelectAll
)

var roleNames = map[Role]string{
	RoleNone:               "",
	RoleUndo:               "undo",
	RoleRedo:               "redo",
	RoleCut:                "cut",
	RoleCopy:               "copy",
	RolePaste:              "paste",
	RolePasteAndMatchStyle: "pasteAndMatchStyle",
	RoleSelectAll:          "selectAll",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Node is one entry of a context menu
type Node struct {
	Kind    Kind
	Label   string
	Enabled bool
	Role    Role
	// Action returns the message to dispatch when the item is activated.
	// It never performs the side effect itself.
	Action tea.Cmd
	Items  []Node
}

// Template is the ordered menu handed to the host presenter
type Template []Node

// NewItem creates an enabled item bound to action
func NewItem(label string, action tea.Cmd) Node {
	return Node{
		Kind:    KindItem,
		Label:   label,
		Enabled: true,
		Action:  action,
	}
}

// NewRoleItem creates an item whose behaviour is supplied by the host
func NewRoleItem(label string, role Role, enabled bool) Node {
	return Node{
		Kind:    KindItem,
		Label:   label,
		Enabled: enabled,
		Role:    role,
	}
}

// NewDisabledItem creates a placeholder item that cannot be activated
func NewDisabledItem(label string) Node {
	return Node{
		Kind:  KindItem,
		Label: label,
	}
}

// NewSubmenu creates a nested menu
func NewSubmenu(label string, items []Node) Node {
	return Node{
		Kind:    KindSubmenu,
		Label:   label,
		Enabled: true,
		Items:   items,
	}
}

// Separator creates a separator node
func Separator() Node {
	return Node{Kind: KindSeparator}
}

// IsSeparator reports whether the node is a separator
func (n Node) IsSeparator() bool {
	return n.Kind == KindSeparator
}

// IsSelectable reports whether the node can be navigated to and activated
func (n Node) IsSelectable() bool {
	return n.Kind != KindSeparator && n.Enabled
}

// Labels returns the labels of the top-level nodes, with "---" for separators
func (t Template) Labels() []string {
	labels := make([]string, 0, len(t))
	for _, n := range t {
		if n.IsSeparator() {
			labels = append(labels, "---")
			continue
		}
		labels = append(labels, n.Label)
	}
	return labels
}

// Find returns the first top-level node with the given label
func (t Template) Find(label string) (Node, bool) {
	for _, n := range t {
		if !n.IsSeparator() && n.Label == label {
			return n, true
		}
	}
	return Node{}, false
}

// Validate checks the separator placement of the template and of every submenu.
func (t Template) Validate() error {
	if len(t) == 0 {
		return nil
	}

	if t[0].IsSeparator() {
		return ErrLeadingSeparator
	}

	if t[len(t)-1].IsSeparator() {
		return ErrTrailingSeparator
	}

	for i, n := range t {
		if i > 0 && n.IsSeparator() && t[i-1].IsSeparator() {
			return fmt.Errorf("%w at index %d", ErrAdjacentSeparators, i)
		}

		if n.Kind == KindSubmenu {
			if err := Template(n.Items).Validate(); err != nil {
				return fmt.Errorf("submenu %q: %w", n.Label, err)
			}
		}
	}

	return nil
}

// join concatenates the non-empty sections with a single separator between them
func join(sections ...[]Node) Template {
	var t Template
	for _, section := range sections {
		if len(section) == 0 {
			continue
		}

		if len(t) > 0 {
			t = append(t, Separator())
		}

		t = append(t, section...)
	}
	return t
}
