package realtime

import "sync"

// Action identifies the kind of post mutation an event describes.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Event describes a post mutation broadcast to listeners. Post carries the
// serialized post for create/update and the post id for delete.
type Event struct {
	Action Action      `json:"action"`
	Post   interface{} `json:"post"`
}

// Publisher is the side of the hub the mutation pipeline sees.
type Publisher interface {
	Publish(evt Event)
}

// Hub fans post-mutation events out to all currently connected subscribers.
// Delivery is fire-and-forget: a subscriber with a full buffer misses the
// event, and having no subscribers at all is not an error.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new listener with the given buffer size.
func (h *Hub) Subscribe(buffer int) chan Event {
	ch := make(chan Event, buffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish sends the event to every subscriber without blocking.
func (h *Hub) Publish(evt Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}
