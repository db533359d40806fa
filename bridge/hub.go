package bridge

import "sync"

// subscriberBuffer leaves room for a duplicate terminal delivery
// without blocking the publisher.
const subscriberBuffer = 4

// Hub is the shared in-process channel the authorization window's
// callback publishes into and authorization attempts listen on. It is
// untrusted input from the subscriber's point of view: anything may be
// published, and only well-formed bridge messages reach subscribers.
//
// Delivery is best effort and may duplicate; a subscriber that has
// already accepted a terminal message simply unsubscribes and the
// duplicate is dropped.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Message
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Message)}
}

// Subscribe registers a listener for bridge messages. The returned
// cancel function removes the listener and is safe to call more than
// once; it must be called on every exit path of an attempt.
func (h *Hub) Subscribe() (<-chan Message, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Message, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
	return ch, cancel
}

// Publish validates a raw payload and fans out the decoded message.
// Malformed payloads are dropped silently.
func (h *Hub) Publish(raw []byte) {
	msg, ok := Decode(raw)
	if !ok {
		return
	}
	h.Deliver(msg)
}

// Deliver fans out an already-validated message to all current
// subscribers. Sends never block: a subscriber that stopped draining
// its channel loses messages rather than wedging the publisher.
func (h *Hub) Deliver(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount reports the number of registered listeners.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
