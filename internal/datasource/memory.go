package datasource

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryNotifier is an in-process Notifier for tests and single-instance
// deployments without Redis.
type MemoryNotifier struct {
	mu   sync.Mutex
	subs map[uuid.UUID]map[chan Event]struct{}
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{subs: make(map[uuid.UUID]map[chan Event]struct{})}
}

// Publish delivers the event to every current subscriber of the owner.
// Subscribers with a full buffer miss the event rather than block the writer.
func (n *MemoryNotifier) Publish(ctx context.Context, ownerID uuid.UUID, event Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs[ownerID] {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

// Subscribe registers a buffered channel for the owner's events.
func (n *MemoryNotifier) Subscribe(ctx context.Context, ownerID uuid.UUID) (<-chan Event, func(), error) {
	ch := make(chan Event, 16)

	n.mu.Lock()
	if n.subs[ownerID] == nil {
		n.subs[ownerID] = make(map[chan Event]struct{})
	}
	n.subs[ownerID][ch] = struct{}{}
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		if _, ok := n.subs[ownerID][ch]; ok {
			delete(n.subs[ownerID], ch)
			close(ch)
		}
		n.mu.Unlock()
	}
	return ch, cancel, nil
}
