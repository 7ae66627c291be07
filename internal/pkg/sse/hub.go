package sse

import (
	"sync"
)

// Event is one server-sent event addressed to a user.
type Event struct {
	UserID string
	Event  string
	Data   interface{}
}

// subscriberBuffer is the per-connection channel capacity; slow readers
// drop events rather than block publishers.
const subscriberBuffer = 10

type subscriberSet map[chan Event]struct{}

// Hub fans events out to per-user subscriber channels.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]subscriberSet
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]subscriberSet),
	}
}

// Subscribe registers a listener for userID. The returned cleanup must
// be called when the connection ends; it closes the channel.
func (h *Hub) Subscribe(userID string) (chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(subscriberSet)
	}
	h.subscribers[userID][ch] = struct{}{}
	h.mu.Unlock()

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[userID], ch)
		close(ch)
		if len(h.subscribers[userID]) == 0 {
			delete(h.subscribers, userID)
		}
	}

	return ch, cleanup
}

// Publish delivers an event to every subscriber of one user.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	deliver(h.subscribers[userID], event)
}

// Broadcast delivers an event to every connected subscriber, stamping
// each copy with the recipient's user ID.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for userID, subs := range h.subscribers {
		ev := event
		ev.UserID = userID
		deliver(subs, ev)
	}
}

// PublishToMany delivers an event to each listed user.
func (h *Hub) PublishToMany(userIDs []string, event Event) {
	for _, userID := range userIDs {
		ev := event
		ev.UserID = userID
		h.Publish(userID, ev)
	}
}

// deliver sends without blocking; full channels drop the event.
func deliver(subs subscriberSet, event Event) {
	for ch := range subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers for a user.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}

// TotalSubscribers returns the number of active subscribers overall.
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
