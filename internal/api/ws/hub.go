// Package ws carries real-time chat over websockets. Messages are
// persisted through the chat service before they are fanned out, so a
// dropped socket never loses data.
package ws

import (
	"sync"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// GlobalRoom is the shared room every connected user joins.
const GlobalRoom = "global"

// Hub tracks connected clients and their room subscriptions.
type Hub struct {
	logger logger.Logger

	mu      sync.RWMutex
	clients map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}
}

// NewHub creates an empty Hub.
func NewHub(logger logger.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*Client]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client from the hub and every room, closing its
// send channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for room, members := range h.rooms {
		if _, ok := members[client]; ok {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	close(client.send)
}

// Join subscribes a client to a room.
func (h *Hub) Join(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[client] = struct{}{}
}

// Leave unsubscribes a client from a room.
func (h *Hub) Leave(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

// Broadcast sends a payload to every client in a room. A non-nil except
// client is skipped. Clients with a full send buffer are dropped.
func (h *Hub) Broadcast(room string, payload []byte, except *Client) {
	h.mu.RLock()
	var stale []*Client
	for client := range h.rooms[room] {
		if client == except {
			continue
		}
		select {
		case client.send <- payload:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stale {
		h.logger.Warn("Dropping slow websocket client ", client.userID)
		h.Unregister(client)
	}
}

// Send delivers a payload to a single client.
func (h *Hub) Send(client *Client, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	select {
	case client.send <- payload:
	default:
	}
}

// RoomSize returns the number of clients subscribed to a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
