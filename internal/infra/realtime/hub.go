package realtime

import "sync"

// subscriberBuffer bounds each subscriber channel. A subscriber that falls
// this far behind loses events; the SSE client recovers by re-querying.
const subscriberBuffer = 16

// Hub fans appointment events out to per-salon subscribers. Subscribers
// are typically SSE connections of open staff views.
type Hub struct {
	mu   sync.RWMutex
	subs map[int64]map[chan AppointmentEvent]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int64]map[chan AppointmentEvent]struct{})}
}

// Subscribe registers interest in one salon's events. The returned cancel
// function must be called when the consumer goes away; it closes the
// channel.
func (h *Hub) Subscribe(salonID int64) (<-chan AppointmentEvent, func()) {
	ch := make(chan AppointmentEvent, subscriberBuffer)

	h.mu.Lock()
	if h.subs[salonID] == nil {
		h.subs[salonID] = make(map[chan AppointmentEvent]struct{})
	}
	h.subs[salonID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[salonID]; ok {
			if _, subscribed := set[ch]; subscribed {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(h.subs, salonID)
			}
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish delivers an event to every subscriber of its salon. Sends never
// block: a full subscriber buffer drops the event for that subscriber.
func (h *Hub) Publish(event AppointmentEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[event.SalonID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers for a salon.
func (h *Hub) SubscriberCount(salonID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[salonID])
}
