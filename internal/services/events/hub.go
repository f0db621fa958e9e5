package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/blockdrop/internal/dependencies/clock"
	"github.com/mcoot/blockdrop/internal/model"
)

// Buffer size for each subscriber's queue
const sendBufferSize = 256

// Subscriber receives a copy of every event published after it registered
type Subscriber struct {
	name        string
	send        chan model.Event
	connectedAt time.Time
}

// Events returns the subscriber's queue. It is closed when the subscriber is
// unregistered or the hub stops.
func (s *Subscriber) Events() <-chan model.Event {
	return s.send
}

// Hub fans engine events out to subscribers on its own goroutine, so a slow
// consumer never stalls the game loop. Events for a full subscriber are dropped.
type Hub struct {
	subscribers map[*Subscriber]bool
	mu          sync.RWMutex
	clock       clock.Clock
	logger      *slog.Logger

	// Channels for managing subscribers
	register   chan *Subscriber
	unregister chan *Subscriber
	broadcast  chan model.Event
	done       chan struct{}
	stopped    chan struct{}
}

// NewHub creates a Hub; call Run to start delivering
func NewHub(clk clock.Clock, logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		clock:       clk,
		logger:      logger.With(slog.String("component", "event-hub")),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan model.Event, sendBufferSize),
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
}

// Run starts the hub's event loop and returns once Close is called
func (h *Hub) Run() {
	defer close(h.stopped)
	h.logger.Debug("event hub started")
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.subscribers[sub] = true
			count := len(h.subscribers)
			h.mu.Unlock()
			h.logger.Debug("subscriber registered",
				slog.String("subscriber", sub.name),
				slog.Int("total_subscribers", count))

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.send)
				count := len(h.subscribers)
				h.mu.Unlock()
				h.logger.Debug("subscriber unregistered",
					slog.String("subscriber", sub.name),
					slog.Duration("subscribed_for", h.clock.Now().Sub(sub.connectedAt)),
					slog.Int("total_subscribers", count))
			} else {
				h.mu.Unlock()
			}

		case event := <-h.broadcast:
			h.deliver(event)

		case <-h.done:
			// Flush what was published before Close
			for len(h.broadcast) > 0 {
				h.deliver(<-h.broadcast)
			}
			h.mu.Lock()
			count := len(h.subscribers)
			for sub := range h.subscribers {
				close(sub.send)
				delete(h.subscribers, sub)
			}
			h.mu.Unlock()
			h.logger.Debug("event hub stopped", slog.Int("disconnected_subscribers", count))
			return
		}
	}
}

func (h *Hub) deliver(event model.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers {
		select {
		case sub.send <- event:
		default:
			h.logger.Warn("event dropped - subscriber buffer full",
				slog.String("subscriber", sub.name),
				slog.String("event", string(event.Type)))
		}
	}
}

// Subscribe registers a new subscriber. It waits for Run to accept it; once
// the hub has stopped it returns a subscriber whose queue is already closed.
func (h *Hub) Subscribe(name string) *Subscriber {
	sub := &Subscriber{
		name:        name,
		send:        make(chan model.Event, sendBufferSize),
		connectedAt: h.clock.Now(),
	}
	select {
	case h.register <- sub:
	case <-h.stopped:
		close(sub.send)
	}
	return sub
}

// Unsubscribe removes a subscriber and closes its queue
func (h *Hub) Unsubscribe(sub *Subscriber) {
	select {
	case h.unregister <- sub:
	case <-h.stopped:
	}
}

// OnEvent publishes an event without blocking the caller
func (h *Hub) OnEvent(event model.Event) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("event dropped - hub buffer full", slog.String("event", string(event.Type)))
	}
}

// Close stops the hub after delivering already published events, and waits
// for Run to return
func (h *Hub) Close() {
	close(h.done)
	<-h.stopped
}

// SubscriberCount returns the number of registered subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
