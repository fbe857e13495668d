package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/devRabbiz/waveboxapp/internal/config"
	"github.com/devRabbiz/waveboxapp/internal/logging"
	"github.com/devRabbiz/waveboxapp/pkg/browser"
	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
	"github.com/devRabbiz/waveboxapp/pkg/i18n"
	"github.com/devRabbiz/waveboxapp/pkg/language"
	"github.com/devRabbiz/waveboxapp/pkg/spellcheck"
)

// addInteractionFlags registers the flags describing a right-click
func addInteractionFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("context", "c", "", "Read the interaction from a JSON file, - for stdin")
	flags.Bool("editable", false, "The click landed in an editable field")
	flags.String("misspelled", "", "Misspelled word under the pointer")
	flags.String("selection", "", "Selected text")
	flags.String("link", "", "URL of the link under the pointer")
	flags.Bool("can-undo", false, "The surface can undo")
	flags.Bool("can-redo", false, "The surface can redo")
	flags.Bool("can-cut", false, "The surface can cut")
	flags.Bool("can-copy", false, "The surface can copy")
	flags.Bool("can-paste", false, "The surface can paste")
	flags.Bool("can-select-all", false, "The surface can select all")
	flags.Int("x", 0, "Horizontal position of the click")
	flags.Int("y", 0, "Vertical position of the click")
}

func loadInteraction(cmd *cobra.Command) (contextmenu.InteractionContext, error) {
	flags := cmd.Flags()

	if path, _ := flags.GetString("context"); path != "" {
		return readInteraction(cmd.InOrStdin(), path)
	}

	var ctx contextmenu.InteractionContext

	ctx.IsEditable, _ = flags.GetBool("editable")
	ctx.MisspelledWord, _ = flags.GetString("misspelled")
	ctx.SelectionText, _ = flags.GetString("selection")
	ctx.LinkURL, _ = flags.GetString("link")
	ctx.EditFlags.CanUndo, _ = flags.GetBool("can-undo")
	ctx.EditFlags.CanRedo, _ = flags.GetBool("can-redo")
	ctx.EditFlags.CanCut, _ = flags.GetBool("can-cut")
	ctx.EditFlags.CanCopy, _ = flags.GetBool("can-copy")
	ctx.EditFlags.CanPaste, _ = flags.GetBool("can-paste")
	ctx.EditFlags.CanSelectAll, _ = flags.GetBool("can-select-all")
	ctx.Position.X, _ = flags.GetInt("x")
	ctx.Position.Y, _ = flags.GetInt("y")

	return ctx, nil
}

func readInteraction(stdin io.Reader, path string) (contextmenu.InteractionContext, error) {
	var ctx contextmenu.InteractionContext

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return ctx, fmt.Errorf("failed to open context: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&ctx); err != nil {
		return ctx, fmt.Errorf("failed to decode context: %w", err)
	}

	return ctx, nil
}

// openSpellchecker loads the configured dictionaries. It returns nil when
// spellchecking is not configured or the dictionaries cannot be loaded.
func openSpellchecker(stderr io.Writer) *spellcheck.Spellchecker {
	primary, secondary := config.SpellcheckLanguages()
	if primary == "" && secondary == "" {
		return nil
	}

	dir, err := config.DictionariesDir()
	if err != nil {
		fmt.Fprintln(stderr, "Spellchecking disabled:", err)
		return nil
	}

	storage, err := config.GetStorage()
	if err != nil {
		fmt.Fprintln(stderr, "Spellchecking disabled:", err)
		return nil
	}

	sc, err := spellcheck.Open(dir, primary, secondary, storage)
	if err != nil {
		logging.Logger.Warn("Failed to load dictionaries", "dir", dir, "error", err)
		fmt.Fprintln(stderr, "Spellchecking disabled:", err)
		return nil
	}

	return sc
}

func newBuilder(sc *spellcheck.Spellchecker) *contextmenu.Builder {
	locale := config.Locale()

	opts := []contextmenu.Option{
		contextmenu.WithLanguageNames(language.NewNames(locale)),
		contextmenu.WithBackgroundLinks(browser.SupportsBackground()),
		contextmenu.WithLogger(logging.Logger),
	}

	if sc != nil {
		opts = append(opts, contextmenu.WithSpellchecker(sc))
	}

	if dir, err := config.LocalesDir(); err == nil && locale != "" {
		opts = append(opts, contextmenu.WithTranslator(i18n.New(dir, locale).Get))
	}

	return contextmenu.NewBuilder(config.Features(), opts...)
}
