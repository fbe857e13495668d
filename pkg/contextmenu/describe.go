package contextmenu

import (
	"strings"
)

// Description is a serialisable view of a node
type Description struct {
	Kind    string        `json:"kind"`
	Label   string        `json:"label,omitempty"`
	Enabled bool          `json:"enabled"`
	Role    string        `json:"role,omitempty"`
	Action  *ActionInfo   `json:"action,omitempty"`
	Items   []Description `json:"items,omitempty"`
}

// ActionInfo names the action bound to an item and carries its payload
type ActionInfo struct {
	Kind    string    `json:"kind"`
	Payload ActionMsg `json:"payload,omitempty"`
}

// Describe converts the template into descriptions. Actions are resolved by
// invoking their commands, which only build messages.
func Describe(t Template) []Description {
	descriptions := make([]Description, 0, len(t))
	for _, n := range t {
		descriptions = append(descriptions, describe(n))
	}
	return descriptions
}

func describe(n Node) Description {
	d := Description{
		Kind:    n.Kind.String(),
		Label:   n.Label,
		Enabled: n.Enabled,
		Role:    n.Role.String(),
	}

	if n.Action != nil {
		if msg, ok := n.Action().(ActionMsg); ok {
			d.Action = &ActionInfo{Kind: msg.ActionKind(), Payload: msg}
		}
	}

	if n.Kind == KindSubmenu {
		d.Items = Describe(n.Items)
	}

	return d
}

// Outline renders the template as a markdown list
func Outline(t Template) string {
	var sb strings.Builder
	outline(&sb, t, 0)
	return sb.String()
}

func outline(sb *strings.Builder, nodes []Node, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, n := range nodes {
		if n.IsSeparator() {
			if depth == 0 {
				sb.WriteString("\n---\n\n")
			} else {
				sb.WriteString(indent + "- ―\n")
			}
			continue
		}

		sb.WriteString(indent + "- " + escapeMarkdown(n.Label))

		if n.Role != RoleNone {
			sb.WriteString(" `" + n.Role.String() + "`")
		}

		if !n.Enabled {
			sb.WriteString(" *(disabled)*")
		}

		sb.WriteString("\n")

		if n.Kind == KindSubmenu {
			outline(sb, n.Items, depth+1)
		}
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
