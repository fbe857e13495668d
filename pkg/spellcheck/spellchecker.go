package spellcheck

import (
	"errors"

	"github.com/devRabbiz/waveboxapp/internal/logging"
	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
)

// DefaultSuggestionLimit caps the suggestions offered per language
const DefaultSuggestionLimit = 5

var ErrNoCustomWords = errors.New("custom words are not configured")

// Spellchecker checks words against a primary and an optional secondary dictionary
// plus the user's custom words.
type Spellchecker struct {
	primary   *Dictionary
	secondary *Dictionary
	custom    *CustomWords
	limit     int
}

var _ contextmenu.Spellchecker = (*Spellchecker)(nil)

// New creates a spellchecker. Any argument may be nil.
func New(primary, secondary *Dictionary, custom *CustomWords) *Spellchecker {
	return &Spellchecker{
		primary:   primary,
		secondary: secondary,
		custom:    custom,
		limit:     DefaultSuggestionLimit,
	}
}

// HasSpellchecker reports whether at least one dictionary is loaded
func (s *Spellchecker) HasSpellchecker() bool {
	return s != nil && (s.primary != nil || s.secondary != nil)
}

// Check reports whether word is spelled correctly in any dictionary
func (s *Spellchecker) Check(word string) bool {
	if !s.HasSpellchecker() {
		return true
	}

	if s.custom != nil && s.custom.Has(word) {
		return true
	}

	for _, d := range s.dictionaries() {
		if d.Has(word) {
			return true
		}
	}

	return false
}

// Suggestions returns the corrections of each loaded dictionary
func (s *Spellchecker) Suggestions(word string) *contextmenu.SpellSuggestions {
	if !s.HasSpellchecker() {
		return nil
	}

	result := &contextmenu.SpellSuggestions{}

	if s.primary != nil {
		result.Primary = &contextmenu.LanguageSuggestions{
			Language:    s.primary.Language(),
			Suggestions: s.primary.Suggest(word, s.limit),
		}
	}

	if s.secondary != nil {
		result.Secondary = &contextmenu.LanguageSuggestions{
			Language:    s.secondary.Language(),
			Suggestions: s.secondary.Suggest(word, s.limit),
		}
	}

	logging.Logger.Debug("Spelling suggestions", "word", word,
		"primary", result.Primary != nil, "secondary", result.Secondary != nil)

	return result
}

// AddCustomWord stores word so it is no longer reported as misspelled
func (s *Spellchecker) AddCustomWord(word string) error {
	if s == nil || s.custom == nil {
		return ErrNoCustomWords
	}

	if err := s.custom.Add(word); err != nil {
		return err
	}

	logging.Logger.Info("Custom word added", "word", word)
	return nil
}

func (s *Spellchecker) dictionaries() []*Dictionary {
	var dicts []*Dictionary
	if s.primary != nil {
		dicts = append(dicts, s.primary)
	}
	if s.secondary != nil {
		dicts = append(dicts, s.secondary)
	}
	return dicts
}

// Open loads the dictionaries for primary and secondary from dir and the custom
// words from storage. An empty language is skipped.
func Open(dir, primary, secondary, storage string) (*Spellchecker, error) {
	var dicts [2]*Dictionary

	for i, lang := range []string{primary, secondary} {
		if lang == "" {
			continue
		}

		d, err := OpenDictionary(dir, lang)
		if err != nil {
			return nil, err
		}
		dicts[i] = d
	}

	custom, err := LoadCustomWords(storage)
	if err != nil {
		return nil, err
	}

	return New(dicts[0], dicts[1], custom), nil
}
