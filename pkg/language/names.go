package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
)

// Names resolves language codes such as "en_GB" or "de-DE" to display names
type Names struct {
	namer display.Namer
}

var _ contextmenu.LanguageNames = (*Names)(nil)

// NewNames returns names rendered in displayLanguage. Unknown or empty display
// languages fall back to English.
func NewNames(displayLanguage string) *Names {
	namer := display.English.Tags()

	if displayLanguage != "" {
		if tag, err := language.Parse(normalise(displayLanguage)); err == nil {
			if n := display.Tags(tag); n != nil {
				namer = n
			}
		}
	}

	return &Names{namer: namer}
}

// NameFor returns the display name of code
func (n *Names) NameFor(code string) (string, bool) {
	if code == "" {
		return "", false
	}

	tag, err := language.Parse(normalise(code))
	if err != nil {
		return "", false
	}

	name := n.namer.Name(tag)
	if name == "" {
		return "", false
	}

	return name, true
}

func normalise(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
}
