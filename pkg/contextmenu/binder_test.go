package contextmenu

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu       sync.Mutex
	handlers map[int]func(InteractionContext)
	next     int
}

func newFakeSource() *fakeSource {
	return &fakeSource{handlers: make(map[int]func(InteractionContext))}
}

func (s *fakeSource) OnContextMenu(handler func(InteractionContext)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.handlers[id] = handler

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers, id)
	}
}

func (s *fakeSource) trigger(ctx InteractionContext) {
	s.mu.Lock()
	handlers := make([]func(InteractionContext), 0, len(s.handlers))
	for _, h := range s.handlers {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h(ctx)
	}
}

func (s *fakeSource) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

func TestBinderPresentsBuiltTemplate(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	var presented []Template

	NewBinder(source, NewBuilder(FeatureConfig{}), func(tmpl Template) {
		presented = append(presented, tmpl)
	})

	source.trigger(InteractionContext{SelectionText: "hello"})

	require.Len(t, presented, 1)
	assert.Equal(t, []string{`Search Google for "hello"`, "---", LabelSettings, LabelInspect}, presented[0].Labels())
}

func TestBinderRebindKeepsSingleSubscription(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	presentations := 0

	binder := NewBinder(source, NewBuilder(FeatureConfig{}), func(Template) {
		presentations++
	})
	assert.Equal(t, 1, source.count())

	binder.Rebind()
	binder.Rebind()
	assert.Equal(t, 1, source.count())

	source.trigger(InteractionContext{})
	assert.Equal(t, 1, presentations, "one interaction must produce one menu")

	binder.Unbind()
	assert.Equal(t, 0, source.count())

	binder.Unbind()
	source.trigger(InteractionContext{})
	assert.Equal(t, 1, presentations)
}

func TestBinderReconfigure(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	var last Template

	binder := NewBinder(source, NewBuilder(FeatureConfig{}), func(tmpl Template) {
		last = tmpl
	})

	binder.Reconfigure(NewBuilder(FeatureConfig{CopyCurrentPageURLOption: true}))
	assert.Equal(t, 1, source.count())

	source.trigger(InteractionContext{})
	assert.Equal(t, []string{LabelCopyCurrentURL, "---", LabelSettings, LabelInspect}, last.Labels())
}
