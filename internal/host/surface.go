package host

import (
	"errors"

	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
)

var (
	ErrNoMisspelling    = errors.New("no misspelled word to replace")
	ErrInvalidSelection = errors.New("selection is out of range")
	ErrRoleUnavailable  = errors.New("role cannot be performed")
	ErrUnsupportedRole  = errors.New("unsupported role")
)

// Surface is the content area a context menu was opened on
type Surface interface {
	contextmenu.EventSource

	CurrentURL() string
	ReplaceMisspelling(suggestion string) error
	InspectElement(x, y int) error
	PerformRole(role contextmenu.Role) error
}
