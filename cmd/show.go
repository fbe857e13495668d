package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/devRabbiz/waveboxapp/internal/dispatch"
	"github.com/devRabbiz/waveboxapp/internal/host"
	"github.com/devRabbiz/waveboxapp/pkg/browser"
	"github.com/devRabbiz/waveboxapp/pkg/clipboard"
	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
	"github.com/devRabbiz/waveboxapp/pkg/spellcheck"
	"github.com/devRabbiz/waveboxapp/tui"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the context menu for an interaction and perform the chosen action",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadInteraction(cmd)
			if err != nil {
				return err
			}

			pageURL, _ := cmd.Flags().GetString("page-url")
			text, _ := cmd.Flags().GetString("text")

			sc := openSpellchecker(cmd.ErrOrStderr())
			cb := systemClipboard()
			doc := newDocument(ctx, pageURL, text, cb)
			original := doc.Text()

			tmpl := presentOnce(doc, newBuilder(sc), ctx)
			if err := tmpl.Validate(); err != nil {
				return err
			}

			p := tea.NewProgram(tui.New(tmpl, ctx.Position), programOptions(cmd)...)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("failed to run menu: %w", err)
			}

			d := newDispatcher(cmd.OutOrStdout(), doc, cb, sc)
			result := final.(tui.Model).Result().Perform(d)

			return report(cmd.ErrOrStderr(), result, doc, original)
		},
	}

	addInteractionFlags(cmd)
	cmd.Flags().String("page-url", "", "URL of the page the menu was opened on")
	cmd.Flags().String("text", "", "Content of the editable field, defaults to the misspelled word and selection")

	return cmd
}

// programOptions draws the menu on stderr so stdout only carries host messages
func programOptions(cmd *cobra.Command) []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(cmd.ErrOrStderr()),
	}

	// bubbletea falls back to the tty when stdin is redirected, so only
	// override the input when the command was given another reader
	if in := cmd.InOrStdin(); in != os.Stdin {
		opts = append(opts, tea.WithInput(in))
	}

	return opts
}

// systemClipboard falls back to an in-process clipboard when no clipboard utility is installed
func systemClipboard() clipboard.ReadWriter {
	if clipboard.Available() {
		return clipboard.System{}
	}
	return &clipboard.Memory{}
}

func newDocument(ctx contextmenu.InteractionContext, pageURL, text string, cb clipboard.ReadWriter) *host.Document {
	if text == "" {
		text = strings.TrimSpace(ctx.MisspelledWord + " " + ctx.SelectionText)
	}

	doc := host.NewDocument(pageURL, text, cb)
	doc.SetEditable(ctx.IsEditable)
	doc.SetMisspelled(ctx.MisspelledWord)

	if ctx.SelectionText != "" {
		if idx := strings.LastIndex(text, ctx.SelectionText); idx >= 0 {
			_ = doc.Select(idx, idx+len(ctx.SelectionText))
		}
	}

	return doc
}

// presentOnce routes a single interaction through a binder and returns the template it produced
func presentOnce(doc *host.Document, builder *contextmenu.Builder, ctx contextmenu.InteractionContext) contextmenu.Template {
	var tmpl contextmenu.Template

	binder := contextmenu.NewBinder(doc, builder, func(t contextmenu.Template) {
		tmpl = t
	})
	defer binder.Unbind()

	doc.Trigger(ctx)

	return tmpl
}

func newDispatcher(out io.Writer, doc *host.Document, cb clipboard.Writer, sc *spellcheck.Spellchecker) *dispatch.Dispatcher {
	opts := []dispatch.Option{
		dispatch.WithSurface(doc),
		dispatch.WithMessenger(host.NewJSONMessenger(out)),
		dispatch.WithClipboard(cb),
		dispatch.WithBrowser(browser.Open),
	}

	if sc != nil {
		opts = append(opts, dispatch.WithCustomWords(sc))
	}

	return dispatch.New(opts...)
}

func report(w io.Writer, result tui.Result, doc *host.Document, original string) error {
	if !result.Activated {
		fmt.Fprintln(w, "Menu closed")
		return nil
	}

	kind := "unknown"
	if action, ok := result.Action.(contextmenu.ActionMsg); ok {
		kind = action.ActionKind()
	}

	if result.Err != nil {
		return fmt.Errorf("%s failed: %w", kind, result.Err)
	}

	fmt.Fprintln(w, "Performed", kind)

	if text := doc.Text(); text != original {
		fmt.Fprintln(w, "Text:", text)
	}

	return nil
}
