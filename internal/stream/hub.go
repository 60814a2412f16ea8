// Package stream provides change-notification fan-out for ledger consumers.
package stream

import (
	"sync"
	"sync/atomic"
	"time"
)

// EventKind classifies a ledger change notification.
type EventKind string

const (
	EventTrade   EventKind = "trade"
	EventPrice   EventKind = "price"
	EventReset   EventKind = "reset"
	EventLoad    EventKind = "load"
	EventCleanup EventKind = "cleanup"
)

// Event is a ledger change notification. It carries no ledger data;
// consumers re-fetch the snapshot, keeping them decoupled from ledger
// internals.
type Event struct {
	Kind   EventKind
	Symbol string
	At     time.Time
}

// HubConfig holds configuration for the notification hub.
type HubConfig struct {
	// SubscriberBufferSize is the size of each subscriber's channel buffer.
	SubscriberBufferSize int
}

// DefaultHubConfig returns the default hub configuration.
func DefaultHubConfig() HubConfig {
	return HubConfig{
		SubscriberBufferSize: 64,
	}
}

// Hub fans out ledger change events to subscribers. Publishing never
// blocks: a subscriber whose buffer is full misses the event and is
// expected to re-fetch the snapshot on its next event.
type Hub struct {
	config      HubConfig
	mu          sync.RWMutex
	subscribers map[string]chan Event
	stopped     bool

	dropped atomic.Uint64
}

// NewHub creates a new hub with default configuration.
func NewHub() *Hub {
	return NewHubWithConfig(DefaultHubConfig())
}

// NewHubWithConfig creates a new hub with custom configuration.
func NewHubWithConfig(config HubConfig) *Hub {
	return &Hub{
		config:      config,
		subscribers: make(map[string]chan Event),
	}
}

// Subscribe registers a consumer under id and returns its event channel.
// Subscribing twice under the same id replaces the earlier subscription.
func (h *Hub) Subscribe(id string) <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.subscribers[id]; ok {
		close(old)
	}
	ch := make(chan Event, h.config.SubscriberBufferSize)
	h.subscribers[id] = ch
	return ch
}

// Unsubscribe removes a consumer and closes its channel.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		close(ch)
		delete(h.subscribers, id)
	}
}

// Publish delivers an event to all subscribers without blocking.
func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.stopped {
		return
	}
	for _, ch := range h.subscribers {
		select {
		case ch <- e:
		default:
			h.dropped.Add(1)
		}
	}
}

// Dropped returns the number of events discarded due to slow consumers.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Stop closes all subscriber channels. Further publishes are discarded.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return
	}
	h.stopped = true
	for id, ch := range h.subscribers {
		close(ch)
		delete(h.subscribers, id)
	}
}
