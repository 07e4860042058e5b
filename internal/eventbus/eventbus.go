// Package eventbus carries optimization run events from the optimizer to
// in-process observers such as the metrics collector. See core/events for
// the concrete event types.
package eventbus

import "sync"

// Event is one run lifecycle notification.
type Event any

// EventBus fans published events out to every subscriber.
type EventBus interface {
	Publish(Event)
	Subscribe() <-chan Event
	Unsubscribe(<-chan Event)
	Close()
}

// subscriberBuffer sizes each subscriber channel. Improvement events arrive
// in bursts early in a run while the temperature is high and most candidates
// are accepted; the buffer absorbs those bursts so a lagging observer drops
// late events rather than blocking the run.
const subscriberBuffer = 64

// Bus is the in-process EventBus implementation. Publishing never blocks:
// an event is dropped for any subscriber whose buffer is full, and for that
// subscriber only.
type Bus struct {
	mu     sync.Mutex
	subs   map[<-chan Event]chan Event
	closed bool
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[<-chan Event]chan Event)}
}

// Publish delivers the event to every subscriber that has buffer room.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
			// subscriber lagging, drop for it
		}
	}
}

// Subscribe registers a new subscriber. On a closed bus the returned channel
// is already closed.
func (b *Bus) Subscribe() <-chan Event {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = ch
	return ch
}

// Unsubscribe removes the subscriber and closes its channel. Unknown
// channels are ignored.
func (b *Bus) Unsubscribe(sub <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch, ok := b.subs[sub]
	if !ok {
		return
	}
	delete(b.subs, sub)
	close(ch)
}

// Close closes every subscriber channel and drops further publishes.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
