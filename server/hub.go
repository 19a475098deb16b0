package server

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// writeTimeout bounds every frame write to a single client
const writeTimeout = 3 * time.Second

// Client serialises writes to one connection and remembers the last
// frame it received, so frames arrive once and in sequence order
type Client struct {
	conn *websocket.Conn

	mu   sync.Mutex
	sent uint64
}

// send writes data unless the client already has frame seq or a newer one
func (c *Client) send(ctx context.Context, seq uint64, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq <= c.sent {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := c.conn.Write(ctx, websocket.MessageText, data); err != nil {
		return err
	}
	c.sent = seq
	return nil
}

// Hub fans island frames out to every connected stream client
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]*Client
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*Client)}
}

// Add registers conn and returns its client handle
func (h *Hub) Add(conn *websocket.Conn) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[conn]
	if !ok {
		c = &Client{conn: conn}
		h.clients[conn] = c
	}
	return c
}

// Remove unregisters a client
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Len returns the number of connected clients
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) snapshot() []*Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	return clients
}

// Broadcast sends frame seq to every client in parallel and drops the
// clients whose write fails. The hub lock is not held while writing.
func (h *Hub) Broadcast(seq uint64, data []byte) {
	var wg sync.WaitGroup
	for _, c := range h.snapshot() {
		wg.Add(1)
		go func(c *Client) {
			defer wg.Done()
			if err := c.send(context.Background(), seq, data); err != nil {
				_ = c.conn.Close(websocket.StatusGoingAway, "write failed")
				h.Remove(c.conn)
			}
		}(c)
	}
	wg.Wait()
}
