package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"github.com/devRabbiz/waveboxapp/internal/logging"
)

const domain = "default"

// Catalog translates menu labels using gettext catalogs laid out as
// <dir>/<lang>/LC_MESSAGES/default.po
type Catalog struct {
	locale *gotext.Locale
}

// New loads the catalog for lang from dir. An empty lang or a missing catalog
// yields an untranslated catalog.
func New(dir, lang string) *Catalog {
	if dir == "" || lang == "" {
		return &Catalog{}
	}

	po := filepath.Join(dir, lang, "LC_MESSAGES", domain+".po")
	if _, err := os.Stat(po); err != nil {
		logging.Logger.Debug("No translation catalog", "lang", lang, "path", po)
		return &Catalog{}
	}

	locale := gotext.NewLocale(dir, lang)
	locale.AddDomain(domain)

	logging.Logger.Debug("Loaded translation catalog", "lang", lang)

	return &Catalog{locale: locale}
}

// Get translates msgid and formats args into it. Untranslated ids are formatted as is.
func (c *Catalog) Get(msgid string, args ...any) string {
	if c == nil || c.locale == nil {
		if len(args) == 0 {
			return msgid
		}
		return fmt.Sprintf(msgid, args...)
	}

	return c.locale.Get(msgid, args...)
}
