package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
	"github.com/devRabbiz/waveboxapp/ui/markdown"
)

const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

func templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print the context menu built for an interaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadInteraction(cmd)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			width, _ := cmd.Flags().GetInt("width")

			tmpl := newBuilder(openSpellchecker(cmd.ErrOrStderr())).Build(ctx)
			if err := tmpl.Validate(); err != nil {
				return err
			}

			return writeTemplate(cmd.OutOrStdout(), tmpl, format, width)
		},
	}

	addInteractionFlags(cmd)
	cmd.Flags().StringP("format", "f", formatText, "Output format: text, json or markdown")
	cmd.Flags().Int("width", 0, "Word wrap width of markdown output")

	return cmd
}

func writeTemplate(w io.Writer, tmpl contextmenu.Template, format string, width int) error {
	switch format {
	case formatText:
		_, err := io.WriteString(w, textTree(tmpl))
		return err

	case formatJSON:
		data, err := json.MarshalIndent(contextmenu.Describe(tmpl), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal template: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case formatMarkdown:
		out, err := markdown.New(width).Render(contextmenu.Outline(tmpl))
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func textTree(nodes []contextmenu.Node) string {
	var sb strings.Builder
	writeTree(&sb, nodes, 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, nodes []contextmenu.Node, depth int) {
	indent := strings.Repeat("    ", depth)

	for _, n := range nodes {
		switch {
		case n.IsSeparator():
			sb.WriteString(indent + "────\n")
			continue
		case n.Kind == contextmenu.KindSubmenu:
			sb.WriteString(indent + n.Label + " ▸\n")
			writeTree(sb, n.Items, depth+1)
			continue
		}

		line := indent + n.Label
		if n.Role != contextmenu.RoleNone {
			line += " [" + n.Role.String() + "]"
		}
		if !n.Enabled {
			line += " (disabled)"
		}
		sb.WriteString(line + "\n")
	}
}
