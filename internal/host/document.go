package host

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/devRabbiz/waveboxapp/internal/logging"
	"github.com/devRabbiz/waveboxapp/pkg/clipboard"
	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
)

type snapshot struct {
	text       string
	start, end int
}

// Document is an in-memory editable surface. Selection offsets are byte offsets into the text.
type Document struct {
	mu         sync.Mutex
	url        string
	text       string
	start, end int
	editable   bool
	misspelled string
	undo       []snapshot
	redo       []snapshot
	clipboard  clipboard.ReadWriter
	inspected  []contextmenu.Position

	handlers map[int]func(contextmenu.InteractionContext)
	nextID   int
}

var _ Surface = (*Document)(nil)

// NewDocument creates an editable document showing url. cb may be nil, in which
// case clipboard roles are unavailable.
func NewDocument(url, text string, cb clipboard.ReadWriter) *Document {
	return &Document{
		url:       url,
		text:      text,
		start:     len(text),
		end:       len(text),
		editable:  true,
		clipboard: cb,
		handlers:  make(map[int]func(contextmenu.InteractionContext)),
	}
}

func (d *Document) CurrentURL() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.url
}

func (d *Document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.text
}

// Selection returns the selected text
func (d *Document) Selection() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.text[d.start:d.end]
}

// Select selects text[start:end]
func (d *Document) Select(start, end int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if start < 0 || end > len(d.text) || start > end {
		return fmt.Errorf("%w: [%d:%d] of %d", ErrInvalidSelection, start, end, len(d.text))
	}

	d.start, d.end = start, end
	return nil
}

func (d *Document) SetEditable(editable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.editable = editable
}

// SetMisspelled marks word as the misspelling under the pointer
func (d *Document) SetMisspelled(word string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.misspelled = word
}

// EditFlags reports which roles can currently be performed
func (d *Document) EditFlags() contextmenu.EditFlags {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.editFlags()
}

func (d *Document) editFlags() contextmenu.EditFlags {
	selected := d.end > d.start

	return contextmenu.EditFlags{
		CanUndo:      d.editable && len(d.undo) > 0,
		CanRedo:      d.editable && len(d.redo) > 0,
		CanCut:       d.editable && selected && d.clipboard != nil,
		CanCopy:      selected && d.clipboard != nil,
		CanPaste:     d.editable && d.clipboard != nil,
		CanSelectAll: d.text != "",
	}
}

// Interaction snapshots the document state as the context of a right-click at pos
func (d *Document) Interaction(linkURL string, pos contextmenu.Position) contextmenu.InteractionContext {
	d.mu.Lock()
	defer d.mu.Unlock()

	ctx := contextmenu.InteractionContext{
		IsEditable:    d.editable,
		SelectionText: d.text[d.start:d.end],
		LinkURL:       linkURL,
		EditFlags:     d.editFlags(),
		Position:      pos,
	}

	if d.editable {
		ctx.MisspelledWord = d.misspelled
	}

	return ctx
}

// ReplaceMisspelling replaces the first occurrence of the misspelled word
func (d *Document) ReplaceMisspelling(suggestion string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.editable || d.misspelled == "" {
		return ErrNoMisspelling
	}

	idx := strings.Index(d.text, d.misspelled)
	if idx < 0 {
		return fmt.Errorf("%w: %q not in document", ErrNoMisspelling, d.misspelled)
	}

	d.push()
	d.text = d.text[:idx] + suggestion + d.text[idx+len(d.misspelled):]
	d.start = idx + len(suggestion)
	d.end = d.start

	logging.Logger.Debug("Replaced misspelling", "word", d.misspelled, "suggestion", suggestion)
	d.misspelled = ""

	return nil
}

func (d *Document) InspectElement(x, y int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.inspected = append(d.inspected, contextmenu.Position{X: x, Y: y})
	logging.Logger.Debug("Inspect element", "x", x, "y", y)

	return nil
}

// Inspected returns every position passed to InspectElement
func (d *Document) Inspected() []contextmenu.Position {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.inspected)
}

// PerformRole runs a native edit operation
func (d *Document) PerformRole(role contextmenu.Role) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	flags := d.editFlags()

	switch role {
	case contextmenu.RoleUndo:
		if !flags.CanUndo {
			return fmt.Errorf("%w: %s", ErrRoleUnavailable, role)
		}
		d.redo = append(d.redo, d.current())
		d.restore(d.pop(&d.undo))

	case contextmenu.RoleRedo:
		if !flags.CanRedo {
			return fmt.Errorf("%w: %s", ErrRoleUnavailable, role)
		}
		d.undo = append(d.undo, d.current())
		d.restore(d.pop(&d.redo))

	case contextmenu.RoleCut:
		if !flags.CanCut {
			return fmt.Errorf("%w: %s", ErrRoleUnavailable, role)
		}
		if err := d.clipboard.Write(d.text[d.start:d.end]); err != nil {
			return err
		}
		d.push()
		d.insert("")

	case contextmenu.RoleCopy:
		if !flags.CanCopy {
			return fmt.Errorf("%w: %s", ErrRoleUnavailable, role)
		}
		return d.clipboard.Write(d.text[d.start:d.end])

	case contextmenu.RolePaste, contextmenu.RolePasteAndMatchStyle:
		if !flags.CanPaste {
			return fmt.Errorf("%w: %s", ErrRoleUnavailable, role)
		}
		text, err := d.clipboard.Read()
		if err != nil {
			return err
		}
		d.push()
		d.insert(text)

	case contextmenu.RoleSelectAll:
		d.start, d.end = 0, len(d.text)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedRole, role)
	}

	logging.Logger.Debug("Performed role", "role", role.String())
	return nil
}

// insert replaces the selection with text and moves the caret after it
func (d *Document) insert(text string) {
	d.text = d.text[:d.start] + text + d.text[d.end:]
	d.start += len(text)
	d.end = d.start
}

func (d *Document) current() snapshot {
	return snapshot{text: d.text, start: d.start, end: d.end}
}

// push records the current state for undo and clears the redo stack
func (d *Document) push() {
	d.undo = append(d.undo, d.current())
	d.redo = nil
}

func (d *Document) pop(stack *[]snapshot) snapshot {
	s := (*stack)[len(*stack)-1]
	*stack = (*stack)[:len(*stack)-1]
	return s
}

func (d *Document) restore(s snapshot) {
	d.text, d.start, d.end = s.text, s.start, s.end
}

// OnContextMenu registers handler for Trigger. The returned function is safe to call more than once.
func (d *Document) OnContextMenu(handler func(contextmenu.InteractionContext)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.handlers[id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()

			delete(d.handlers, id)
		})
	}
}

// Subscribers returns the number of live subscriptions
func (d *Document) Subscribers() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.handlers)
}

// Trigger delivers ctx to every subscriber
func (d *Document) Trigger(ctx contextmenu.InteractionContext) {
	d.mu.Lock()
	ids := make([]int, 0, len(d.handlers))
	for id := range d.handlers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	handlers := make([]func(contextmenu.InteractionContext), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, d.handlers[id])
	}
	d.mu.Unlock()

	for _, h := range handlers {
		h(ctx)
	}
}
