package dispatch

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devRabbiz/waveboxapp/internal/host"
	"github.com/devRabbiz/waveboxapp/internal/logging"
	"github.com/devRabbiz/waveboxapp/pkg/clipboard"
	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnavailable   = errors.New("action target is not available")
)

// OpenFunc opens a URL, optionally without focusing the browser
type OpenFunc func(url string, background bool) error

// CustomWords accepts words added to the dictionary
type CustomWords interface {
	AddCustomWord(word string) error
}

// Dispatcher performs the side effect behind an activated menu item
type Dispatcher struct {
	surface   host.Surface
	messenger host.Messenger
	clipboard clipboard.Writer
	open      OpenFunc
	words     CustomWords
	logger    *slog.Logger
}

type Option func(*Dispatcher)

func WithSurface(s host.Surface) Option {
	return func(d *Dispatcher) {
		d.surface = s
	}
}

func WithMessenger(m host.Messenger) Option {
	return func(d *Dispatcher) {
		d.messenger = m
	}
}

func WithClipboard(c clipboard.Writer) Option {
	return func(d *Dispatcher) {
		d.clipboard = c
	}
}

func WithBrowser(open OpenFunc) Option {
	return func(d *Dispatcher) {
		d.open = open
	}
}

func WithCustomWords(w CustomWords) Option {
	return func(d *Dispatcher) {
		d.words = w
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{logger: logging.Logger}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch performs msg. Failures are logged and returned.
func (d *Dispatcher) Dispatch(msg tea.Msg) error {
	action, ok := msg.(contextmenu.ActionMsg)
	if !ok {
		err := fmt.Errorf("%w: %T", ErrUnknownAction, msg)
		d.logger.Error("Dispatch failed", "error", err)
		return err
	}

	d.logger.Debug("Dispatching action", "kind", action.ActionKind())

	if err := d.dispatch(action); err != nil {
		d.logger.Error("Action failed", "kind", action.ActionKind(), "error", err)
		return err
	}

	return nil
}

func (d *Dispatcher) dispatch(msg contextmenu.ActionMsg) error {
	switch msg := msg.(type) {
	case contextmenu.ReplaceMisspellingMsg:
		if d.surface == nil {
			return unavailable(msg, "surface")
		}
		return d.surface.ReplaceMisspelling(msg.Suggestion)

	case contextmenu.AddCustomWordMsg:
		if d.words == nil {
			return unavailable(msg, "spellchecker")
		}
		return d.words.AddCustomWord(msg.Word)

	case contextmenu.OpenURLMsg:
		if d.open == nil {
			return unavailable(msg, "browser")
		}
		return d.open(msg.URL, msg.Background)

	case contextmenu.CopyTextMsg:
		if d.clipboard == nil {
			return unavailable(msg, "clipboard")
		}
		return d.clipboard.Write(msg.Text)

	case contextmenu.CopyCurrentURLMsg:
		if d.surface == nil {
			return unavailable(msg, "surface")
		}
		if d.clipboard == nil {
			return unavailable(msg, "clipboard")
		}
		return d.clipboard.Write(d.surface.CurrentURL())

	case contextmenu.OpenCurrentPageMsg:
		if d.surface == nil {
			return unavailable(msg, "surface")
		}
		if d.open == nil {
			return unavailable(msg, "browser")
		}
		return d.open(d.surface.CurrentURL(), false)

	case contextmenu.OpenSettingsMsg:
		if d.messenger == nil {
			return unavailable(msg, "messenger")
		}
		return d.messenger.Send(host.Message{Type: host.OpenSettingsMessage})

	case contextmenu.InspectElementMsg:
		if d.surface == nil {
			return unavailable(msg, "surface")
		}
		return d.surface.InspectElement(msg.X, msg.Y)

	case contextmenu.RoleMsg:
		if d.surface == nil {
			return unavailable(msg, "surface")
		}
		return d.surface.PerformRole(msg.Role)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, msg.ActionKind())
	}
}

func unavailable(msg contextmenu.ActionMsg, target string) error {
	return fmt.Errorf("%w: %s needs a %s", ErrUnavailable, msg.ActionKind(), target)
}
