package contextmenu

import (
	"fmt"
	"log/slog"
	"net/url"
	"unicode/utf8"

	"github.com/devRabbiz/waveboxapp/internal/logging"
)

const (
	// SearchURL is the endpoint used by the search item
	SearchURL = "https://www.google.com/search"

	selectionDisplayLimit = 50
	selectionDisplayRunes = 47
	ellipsis              = "…"
)

// Menu labels. They double as msgids for translation.
const (
	LabelOpenLink             = "Open Link"
	LabelOpenLinkInBackground = "Open Link in Background"
	LabelCopyLinkAddress      = "Copy link Address"
	LabelAddToDictionary      = "Add \"%s\" to Dictionary"
	LabelSearch               = "Search Google for \"%s\""
	LabelUndo                 = "Undo"
	LabelRedo                 = "Redo"
	LabelCut                  = "Cut"
	LabelCopy                 = "Copy"
	LabelPaste                = "Paste"
	LabelPasteAndMatchStyle   = "Paste and match style"
	LabelSelectAll            = "Select all"
	LabelCopyCurrentURL       = "Copy current URL"
	LabelOpenPageInBrowser    = "Open page in Browser"
	LabelSettings             = "Wavebox Settings"
	LabelInspect              = "Inspect"
)

// Spellchecker is the spelling capability the builder consults.
// A spellchecker whose HasSpellchecker returns false is treated as absent.
type Spellchecker interface {
	HasSpellchecker() bool
	Suggestions(word string) *SpellSuggestions
	AddCustomWord(word string) error
}

// LanguageNames resolves a language code to a human readable name
type LanguageNames interface {
	NameFor(code string) (string, bool)
}

// Translator formats a label msgid with its arguments
type Translator func(msgid string, args ...any) string

func sprintf(msgid string, args ...any) string {
	if len(args) == 0 {
		return msgid
	}
	return fmt.Sprintf(msgid, args...)
}

// Builder decides what the context menu contains for an interaction.
// It is read-only after construction and safe for concurrent use.
type Builder struct {
	features        FeatureConfig
	spellchecker    Spellchecker
	languages       LanguageNames
	translate       Translator
	backgroundLinks bool
	logger          *slog.Logger
}

type Option func(*Builder)

// WithSpellchecker enables the spelling section
func WithSpellchecker(s Spellchecker) Option {
	return func(b *Builder) {
		b.spellchecker = s
	}
}

// WithLanguageNames sets the lookup used to label per-language suggestion submenus
func WithLanguageNames(n LanguageNames) Option {
	return func(b *Builder) {
		b.languages = n
	}
}

// WithTranslator sets the label translator
func WithTranslator(t Translator) Option {
	return func(b *Builder) {
		if t != nil {
			b.translate = t
		}
	}
}

// WithBackgroundLinks adds "Open Link in Background" to the link section.
// Only platforms that can open a URL without focusing the browser should enable it.
func WithBackgroundLinks(enabled bool) Option {
	return func(b *Builder) {
		b.backgroundLinks = enabled
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates a builder for the given features
func NewBuilder(features FeatureConfig, opts ...Option) *Builder {
	b := &Builder{
		features:  features,
		translate: sprintf,
		logger:    logging.Logger,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Features returns the feature toggles the builder was created with
func (b *Builder) Features() FeatureConfig {
	return b.features
}

// Build produces the menu for ctx. It performs no side effects.
func (b *Builder) Build(ctx InteractionContext) Template {
	spelling := b.spellingSection(ctx)
	links := b.linkSection(ctx)
	search := b.searchSection(ctx)
	history := b.historySection(ctx)
	editing := b.editingSection(ctx)
	page := b.pageSection()
	app := b.applicationSection(ctx)

	b.logger.Debug("Building context menu",
		"spelling", len(spelling),
		"links", len(links),
		"search", len(search),
		"history", len(history),
		"editing", len(editing),
		"page", len(page))

	return join(spelling, links, search, history, editing, page, app)
}

func (b *Builder) canSpellcheck(ctx InteractionContext) bool {
	return ctx.HasMisspelling() && b.spellchecker != nil && b.spellchecker.HasSpellchecker()
}

func (b *Builder) spellingSection(ctx InteractionContext) []Node {
	if !b.canSpellcheck(ctx) {
		return nil
	}

	suggestions := b.spellchecker.Suggestions(ctx.MisspelledWord)

	if suggestions != nil && suggestions.Primary != nil && suggestions.Secondary != nil {
		return []Node{
			NewSubmenu(b.languageName(suggestions.Primary.Language),
				renderSuggestions(suggestions.Primary.Suggestions, b.translate)),
			NewSubmenu(b.languageName(suggestions.Secondary.Language),
				renderSuggestions(suggestions.Secondary.Suggestions, b.translate)),
		}
	}

	// TODO: suppress the section instead of showing the placeholder when
	// neither dictionary answered; kept for parity with existing hosts.
	return renderSuggestions(suggestions.flatten(), b.translate)
}

func (b *Builder) languageName(code string) string {
	if b.languages != nil {
		if name, ok := b.languages.NameFor(code); ok && name != "" {
			return name
		}
	}
	return code
}

func (b *Builder) linkSection(ctx InteractionContext) []Node {
	if ctx.LinkURL == "" {
		return nil
	}

	nodes := []Node{NewItem(b.translate(LabelOpenLink), OpenURLCmd(ctx.LinkURL, false))}

	if b.backgroundLinks {
		nodes = append(nodes, NewItem(b.translate(LabelOpenLinkInBackground), OpenURLCmd(ctx.LinkURL, true)))
	}

	return append(nodes, NewItem(b.translate(LabelCopyLinkAddress), CopyTextCmd(ctx.LinkURL)))
}

func (b *Builder) searchSection(ctx InteractionContext) []Node {
	if ctx.SelectionText == "" {
		return nil
	}

	var nodes []Node

	if b.canSpellcheck(ctx) {
		nodes = append(nodes, NewItem(
			b.translate(LabelAddToDictionary, ctx.MisspelledWord),
			AddCustomWordCmd(ctx.MisspelledWord),
		))
	}

	return append(nodes, NewItem(
		b.translate(LabelSearch, DisplaySelection(ctx.SelectionText)),
		OpenURLCmd(SearchQueryURL(ctx.SelectionText), false),
	))
}

func (b *Builder) historySection(ctx InteractionContext) []Node {
	flags := ctx.EditFlags
	if !flags.CanUndo && !flags.CanRedo {
		return nil
	}

	return []Node{
		NewRoleItem(b.translate(LabelUndo), RoleUndo, flags.CanUndo),
		NewRoleItem(b.translate(LabelRedo), RoleRedo, flags.CanRedo),
	}
}

func (b *Builder) editingSection(ctx InteractionContext) []Node {
	flags := ctx.EditFlags

	var nodes []Node

	if flags.CanCut {
		nodes = append(nodes, NewRoleItem(b.translate(LabelCut), RoleCut, true))
	}

	if flags.CanCopy {
		nodes = append(nodes, NewRoleItem(b.translate(LabelCopy), RoleCopy, true))
	}

	if flags.CanPaste {
		nodes = append(nodes,
			NewRoleItem(b.translate(LabelPaste), RolePaste, true),
			NewRoleItem(b.translate(LabelPasteAndMatchStyle), RolePasteAndMatchStyle, true),
		)
	}

	if flags.CanSelectAll {
		nodes = append(nodes, NewRoleItem(b.translate(LabelSelectAll), RoleSelectAll, true))
	}

	return nodes
}

func (b *Builder) pageSection() []Node {
	var nodes []Node

	if b.features.CopyCurrentPageURLOption {
		nodes = append(nodes, NewItem(b.translate(LabelCopyCurrentURL), CopyCurrentURLCmd))
	}

	if b.features.OpenCurrentPageInBrowserOption {
		nodes = append(nodes, NewItem(b.translate(LabelOpenPageInBrowser), OpenCurrentPageCmd))
	}

	return nodes
}

func (b *Builder) applicationSection(ctx InteractionContext) []Node {
	return []Node{
		NewItem(b.translate(LabelSettings), OpenSettingsCmd),
		NewItem(b.translate(LabelInspect), InspectElementCmd(ctx.Position)),
	}
}

// DisplaySelection shortens long selections to 47 runes and an ellipsis
func DisplaySelection(text string) string {
	if utf8.RuneCountInString(text) < selectionDisplayLimit {
		return text
	}

	runes := []rune(text)
	return string(runes[:selectionDisplayRunes]) + ellipsis
}

// SearchQueryURL returns the web search URL for the full, untruncated text
func SearchQueryURL(text string) string {
	return SearchURL + "?" + url.Values{"q": {text}}.Encode()
}
