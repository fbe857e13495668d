package contextmenu

// NoSuggestionsLabel is shown when the spellchecker has nothing to offer
const NoSuggestionsLabel = "No Spelling Suggestions"

// LanguageSuggestions are the replacements one dictionary offers for a word
type LanguageSuggestions struct {
	Language    string   `json:"language"`
	Suggestions []string `json:"suggestions"`
}

// SpellSuggestions holds the suggestions of the primary and secondary dictionaries.
// Either may be nil.
type SpellSuggestions struct {
	Primary   *LanguageSuggestions `json:"primary,omitempty"`
	Secondary *LanguageSuggestions `json:"secondary,omitempty"`
}

// flatten returns the suggestions of the first non-nil language, primary first
func (s *SpellSuggestions) flatten() []string {
	if s == nil {
		return nil
	}

	if s.Primary != nil {
		return s.Primary.Suggestions
	}

	if s.Secondary != nil {
		return s.Secondary.Suggestions
	}

	return nil
}

// RenderSuggestions turns suggestions into replacement items, keeping their order.
// An empty list renders a single disabled placeholder.
func RenderSuggestions(suggestions []string) []Node {
	return renderSuggestions(suggestions, sprintf)
}

func renderSuggestions(suggestions []string, t Translator) []Node {
	if len(suggestions) == 0 {
		return []Node{NewDisabledItem(t(NoSuggestionsLabel))}
	}

	nodes := make([]Node, 0, len(suggestions))
	for _, suggestion := range suggestions {
		nodes = append(nodes, NewItem(suggestion, ReplaceMisspellingCmd(suggestion)))
	}

	return nodes
}
