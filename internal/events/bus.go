package events

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Handler receives published events.
type Handler func(Event)

type subscription struct {
	id      uuid.UUID
	handler Handler
}

// Bus is a synchronous Publisher. Handlers run on the publishing goroutine
// in registration order.
type Bus struct {
	mu   sync.RWMutex
	subs []subscription
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers handler and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (b *Bus) Subscribe(handler Handler) (unsubscribe func()) {
	id := uuid.New()

	b.mu.Lock()
	b.subs = append(b.subs, subscription{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.subs = slices.DeleteFunc(b.subs, func(s subscription) bool {
			return s.id == id
		})
	}
}

// Publish delivers event to every current subscriber. Handlers may
// subscribe or unsubscribe during delivery; the change applies to the next
// Publish.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := slices.Clone(b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
