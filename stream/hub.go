package stream

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// writeTimeout bounds each websocket write.
const writeTimeout = 3 * time.Second

// client is the part of *websocket.Conn the hub writes through.
type client interface {
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Close(code websocket.StatusCode, reason string) error
}

// Hub tracks spectator connections and copies every event to them.
type Hub struct {
	mu      sync.Mutex
	clients map[client]struct{}
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[client]struct{})}
}

// Add registers a spectator.
func (h *Hub) Add(conn *websocket.Conn) { h.add(conn) }

// Remove unregisters a spectator.
func (h *Hub) Remove(conn *websocket.Conn) { h.remove(conn) }

func (h *Hub) add(c client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Len returns the number of spectators.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Broadcast writes message to every spectator. Spectators that fail to
// receive it are closed and dropped. Writes happen outside the lock, so a
// slow spectator delays only the caller, never Add, Remove or Len.
func (h *Hub) Broadcast(ctx context.Context, message []byte) {
	h.mu.Lock()
	targets := make([]client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		err := c.Write(wctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = c.Close(websocket.StatusNormalClosure, "")
			h.remove(c)
		}
	}
}
