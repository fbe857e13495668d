package contextmenu

// EditFlags reports which edit operations the surface can currently perform
type EditFlags struct {
	CanUndo      bool `json:"canUndo"`
	CanRedo      bool `json:"canRedo"`
	CanCut       bool `json:"canCut"`
	CanCopy      bool `json:"canCopy"`
	CanPaste     bool `json:"canPaste"`
	CanSelectAll bool `json:"canSelectAll"`
}

// Position is where the interaction happened, in surface coordinates.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InteractionContext is the snapshot of a single right-click.
// Empty strings mean the value is absent.
type InteractionContext struct {
	IsEditable     bool      `json:"isEditable"`
	MisspelledWord string    `json:"misspelledWord,omitempty"`
	SelectionText  string    `json:"selectionText,omitempty"`
	LinkURL        string    `json:"linkURL,omitempty"`
	EditFlags      EditFlags `json:"editFlags"`
	Position       Position  `json:"position"`
}

// HasMisspelling reports whether the click landed on a misspelled word in an editable field
func (c InteractionContext) HasMisspelling() bool {
	return c.IsEditable && c.MisspelledWord != ""
}

// FeatureConfig gates the current-page entries. The zero value is the default.
type FeatureConfig struct {
	CopyCurrentPageURLOption       bool `json:"copyCurrentPageUrlOption" mapstructure:"copy_current_page_url_option"`
	OpenCurrentPageInBrowserOption bool `json:"openCurrentPageInBrowserOption" mapstructure:"open_current_page_in_browser_option"`
}
