package ws

import (
	"encoding/json"
	"sync"

	"corvaxlab/internal/logger"
)

// Hub tracks connected clients per user and pushes state-change events to
// every connection a player has open (multiple tabs are fine).
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[int64]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.UserID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.UserID)
	}
}

// Event is the envelope pushed to clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Notify pushes an event to every connection of one user. Slow clients are
// skipped rather than blocking the caller.
func (h *Hub) Notify(userID int64, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("ws event marshal failed", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.Send <- data:
		default:
			logger.Warn("ws send buffer full, dropping event", "user_id", userID)
		}
	}
}

// Connections reports how many connections one user has open.
func (h *Hub) Connections(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
