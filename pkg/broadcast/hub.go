// Package broadcast fans out pipeline events to live subscribers over Server-Sent Events.
// Publishing never blocks: a subscriber whose buffer is full misses the event.
package broadcast

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/newswire/pkg/domain"
)

// event types sent to subscribers
const (
	EventItemsBatch  = "items:batch"
	EventItemNew     = "items:new"
	EventStatsUpdate = "stats:update"
)

// Hub keeps a set of subscribers and delivers encoded events to each of them
type Hub struct {
	bufferSize int
	heartbeat  time.Duration

	mu     sync.RWMutex
	subs   map[string]chan []byte
	closed bool
	seq    atomic.Int64
	drops  atomic.Int64
}

// Option configures Hub
type Option func(*Hub)

// WithBufferSize sets the number of pending events kept per subscriber
func WithBufferSize(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.bufferSize = n
		}
	}
}

// WithHeartbeat sets the interval of keep-alive comments on idle SSE streams
func WithHeartbeat(d time.Duration) Option {
	return func(h *Hub) {
		if d > 0 {
			h.heartbeat = d
		}
	}
}

// NewHub makes an empty hub
func NewHub(opts ...Option) *Hub {
	h := &Hub{bufferSize: 64, heartbeat: 30 * time.Second, subs: map[string]chan []byte{}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscribe registers a new subscriber and returns its id and event channel.
// The channel is closed by Unsubscribe or Close.
func (h *Hub) Subscribe() (string, <-chan []byte) {
	id := uuid.NewString()
	ch := make(chan []byte, h.bufferSize)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return id, ch
	}
	h.subs[id] = ch
	lgr.Printf("[DEBUG] subscriber %s connected, total %d", id, len(h.subs))
	return id, ch
}

// Unsubscribe removes the subscriber and closes its channel
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
		lgr.Printf("[DEBUG] subscriber %s disconnected, total %d", id, len(h.subs))
	}
}

// Subscribers returns the number of connected subscribers
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped returns the number of events not delivered because a subscriber was too slow
func (h *Hub) Dropped() int64 {
	return h.drops.Load()
}

// Close disconnects all subscribers, later publishes are ignored
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}

// BroadcastItems sends a batch of new items as one event
func (h *Hub) BroadcastItems(items []domain.ItemNotification) {
	h.publish(EventItemsBatch, items)
}

// BroadcastItem sends a single new item
func (h *Hub) BroadcastItem(item domain.ItemNotification) {
	h.publish(EventItemNew, item)
}

// BroadcastStats sends aggregate feed statistics
func (h *Hub) BroadcastStats(stats domain.FeedStats) {
	h.publish(EventStatsUpdate, stats)
}

func (h *Hub) publish(eventType string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		lgr.Printf("[WARN] failed to encode %s event: %v", eventType, err)
		return
	}
	frame := []byte(fmt.Sprintf("id: %d\nevent: %s\ndata: %s\n\n", h.seq.Add(1), eventType, payload))

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	for id, ch := range h.subs {
		select {
		case ch <- frame:
		default:
			h.drops.Add(1)
			lgr.Printf("[DEBUG] subscriber %s is slow, dropped %s event", id, eventType)
		}
	}
}

// ServeHTTP streams events to the client until it disconnects or the hub is closed
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// streams outlive the server write timeout
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	id, events := h.Subscribe()
	defer h.Unsubscribe(id)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintf(w, ": connected %s\n\n", id); err != nil {
		return
	}
	flusher.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case frame, ok := <-events:
			if !ok {
				return
			}
			if _, err := w.Write(frame); err != nil {
				lgr.Printf("[DEBUG] failed to write event to subscriber %s: %v", id, err)
				return
			}
			flusher.Flush()
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
