package contextmenu

import "sync"

// EventSource delivers context-menu interactions. The returned function
// removes the subscription.
type EventSource interface {
	OnContextMenu(handler func(InteractionContext)) (unsubscribe func())
}

// Binder keeps exactly one subscription between an event source and a presenter
type Binder struct {
	mu          sync.Mutex
	source      EventSource
	builder     *Builder
	present     func(Template)
	unsubscribe func()
}

// NewBinder subscribes to source. Every interaction is built into a template and
// passed to present.
func NewBinder(source EventSource, builder *Builder, present func(Template)) *Binder {
	b := &Binder{
		source:  source,
		builder: builder,
		present: present,
	}
	b.Rebind()
	return b
}

// Rebind drops the current subscription, if any, and installs a new one
func (b *Binder) Rebind() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.unbindLocked()
	b.unsubscribe = b.source.OnContextMenu(b.handle)
}

// Reconfigure replaces the builder and rebinds
func (b *Binder) Reconfigure(builder *Builder) {
	b.mu.Lock()
	b.builder = builder
	b.mu.Unlock()

	b.Rebind()
}

// Unbind removes the subscription
func (b *Binder) Unbind() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.unbindLocked()
}

func (b *Binder) unbindLocked() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

func (b *Binder) handle(ctx InteractionContext) {
	b.mu.Lock()
	builder := b.builder
	b.mu.Unlock()

	b.present(builder.Build(ctx))
}
