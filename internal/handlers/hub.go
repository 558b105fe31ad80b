package handlers

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"cricket-live-backend/internal/services"
)

// Message is the envelope for every server push.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Client is a single WebSocket connection. Deliveries go through the
// buffered send channel; the write pump drains it to the socket so a slow
// connection never blocks a publisher.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, 64),
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// Hub owns the connection <-> room subscription relation and fans events
// out to subscribers. A client subscribes to at most one room; joining
// again switches rooms instead of stacking subscriptions.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]bool
	rooms   map[*Client]string

	registry *services.TokenRegistry
	matches  *services.MatchIndex
}

func NewHub(registry *services.TokenRegistry, matches *services.MatchIndex) *Hub {
	return &Hub{
		clients:  make(map[*Client]bool),
		rooms:    make(map[*Client]string),
		registry: registry,
		matches:  matches,
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = true
	log.WithField("client_id", c.id).Info("client connected")
}

// Unregister drops every subscription for the client and closes its send
// channel. Safe to call more than once.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}

	delete(h.clients, c)
	delete(h.rooms, c)
	close(c.send)
	log.WithField("client_id", c.id).Info("client disconnected")
}

// Join resolves the token and subscribes the client to its room. On an
// unknown token only the requesting client hears about it.
func (h *Hub) Join(c *Client, token string) {
	record, err := h.registry.Resolve(token)
	if err != nil {
		h.sendTo(c, &Message{Type: "error", Data: "Invalid token"})
		return
	}

	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		h.rooms[c] = record.Room
	}
	h.mu.Unlock()

	h.sendTo(c, &Message{Type: "joined", Data: map[string]string{"room": record.Room}})
}

// BroadcastToRoom hands the event to every client subscribed to the room
// at call time. No subscribers is a no-op, not an error.
func (h *Hub) BroadcastToRoom(room, event string, payload any) {
	data, err := json.Marshal(&Message{Type: event, Data: payload})
	if err != nil {
		log.WithError(err).WithField("event", event).Warn("failed to encode broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client, r := range h.rooms {
		if r == room {
			h.deliver(client, data)
		}
	}
}

// BroadcastToMatch fans the event out to every room registered for the
// match.
func (h *Hub) BroadcastToMatch(matchID, event string, payload any) {
	for _, room := range h.matches.RoomsFor(matchID) {
		h.BroadcastToRoom(room, event, payload)
	}
}

// BroadcastGlobal hands the event to every connected client, joined or
// not.
func (h *Hub) BroadcastGlobal(event string, payload any) {
	data, err := json.Marshal(&Message{Type: event, Data: payload})
	if err != nil {
		log.WithError(err).WithField("event", event).Warn("failed to encode broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.deliver(client, data)
	}
}

func (h *Hub) sendTo(c *Client, msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.WithError(err).WithField("type", msg.Type).Warn("failed to encode message")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		h.deliver(c, data)
	}
}

// deliver pushes into the client's buffer without blocking; a full buffer
// drops the event. Callers hold h.mu.
func (h *Hub) deliver(c *Client, data []byte) {
	select {
	case c.send <- data:
	default:
		log.WithField("client_id", c.id).Warn("send buffer full, dropping event")
	}
}
