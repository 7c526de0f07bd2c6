package notifier

import (
	"reflect"
	"slices"
	"sync"
)

// Subscriber receives every message published on a Bus it is subscribed to.
// Subscribers are compared by identity. Values of uncomparable types are
// always treated as distinct.
type Subscriber interface {
	Receive(message string)
}

// Publisher broadcasts human-readable event messages.
type Publisher interface {
	Publish(message string)
}

var _ Publisher = (*Bus)(nil)

// Bus fans messages out to its subscribers synchronously, in subscription order.
type Bus struct {
	mu          sync.Mutex
	subscribers []Subscriber
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{}
}

// same reports whether a and b are the same subscriber without panicking on
// uncomparable dynamic types.
func same(a, b Subscriber) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return ta == nil && tb == nil
	}
	return a == b
}

func (b *Bus) index(s Subscriber) int {
	return slices.IndexFunc(b.subscribers, func(o Subscriber) bool { return same(o, s) })
}

// Subscribe adds s unless it is already subscribed.
func (b *Bus) Subscribe(s Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.index(s) >= 0 {
		return
	}
	b.subscribers = append(b.subscribers, s)
}

// Unsubscribe removes s. Removing an absent subscriber is a no-op.
func (b *Bus) Unsubscribe(s Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.index(s); i >= 0 {
		b.subscribers = slices.Delete(b.subscribers, i, i+1)
	}
}

// Publish delivers message to every subscriber present when the call starts.
func (b *Bus) Publish(message string) {
	b.mu.Lock()
	snapshot := slices.Clone(b.subscribers)
	b.mu.Unlock()

	for _, s := range snapshot {
		s.Receive(message)
	}
}

// Len reports the number of subscribers.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}
