package application

import (
	"sync"

	"github.com/linskybing/consult-go/internal/domain/ticket"
)

const notifierBuffer = 8

// Notifier fans committed ticket transitions out to per-ticket subscribers.
// Delivery is best effort: a subscriber that cannot keep up loses events and
// is expected to reconcile by pulling current state. The ticket store stays
// the source of truth.
type Notifier struct {
	mu     sync.Mutex
	subs   map[string]map[uint64]chan ticket.StatusEvent
	nextID uint64
}

func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[string]map[uint64]chan ticket.StatusEvent),
	}
}

// Subscribe registers interest in one ticket. The returned cancel func only
// tears down this subscriber; others on the same ticket are unaffected.
func (n *Notifier) Subscribe(ticketID string) (<-chan ticket.StatusEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	ch := make(chan ticket.StatusEvent, notifierBuffer)

	if n.subs[ticketID] == nil {
		n.subs[ticketID] = make(map[uint64]chan ticket.StatusEvent)
	}
	n.subs[ticketID][id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if chans, ok := n.subs[ticketID]; ok {
			if c, ok := chans[id]; ok {
				delete(chans, id)
				close(c)
			}
			if len(chans) == 0 {
				delete(n.subs, ticketID)
			}
		}
	}
	return ch, cancel
}

// Publish pushes an event to all subscribers of the ticket. Sends never
// block: a full buffer drops the event for that subscriber.
func (n *Notifier) Publish(ev ticket.StatusEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs[ev.TicketID] {
		select {
		case ch <- ev:
		default:
		}
	}
}
