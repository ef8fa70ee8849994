package store

import (
	"sync"
	"sync/atomic"
)

// Class names one of the three entity collections.
type Class string

const (
	ClassReports   Class = "reports"
	ClassResources Class = "resources"
	ClassZones     Class = "zones"
)

// Classes lists every entity class.
var Classes = []Class{ClassReports, ClassResources, ClassZones}

// Event signals that a collection changed. Consumers re-read the store; the
// event carries no payload so a dropped event can always be coalesced with a
// later one for the same class.
type Event struct {
	Class Class `json:"class"`
}

// Broadcaster fans out change events to subscribers without blocking the
// store's mutation path.
type Broadcaster struct {
	subscribers map[uint64]chan Event
	nextID      atomic.Uint64
	mu          sync.RWMutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uint64]chan Event),
	}
}

func (b *Broadcaster) Subscribe() (uint64, <-chan Event) {
	id := b.nextID.Add(1)
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()

	return id, ch
}

func (b *Broadcaster) Unsubscribe(id uint64) {
	b.mu.Lock()
	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
	b.mu.Unlock()
}

func (b *Broadcaster) Broadcast(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- e:
		default:
			// Skip slow subscribers; they coalesce on the next event.
		}
	}
}

// Close closes all subscriber channels, ending their watch loops.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
