package ws

import (
	"encoding/json"
	"sync"
)

// MessageType defines the type of WebSocket message.
type MessageType string

const (
	MsgQuestionSelected MessageType = "question_selected"
	MsgRoundScored      MessageType = "round_scored"
	MsgGameOver         MessageType = "game_over"
)

// Message is the WebSocket envelope format.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections keyed by session. The same session key
// may hold several connections (multiple tabs); events fan out to all.
type Hub struct {
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents one WebSocket connection for a session.
type Connection struct {
	SessionKey string
	Send       chan []byte
	Hub        *Hub
}

// BroadcastMessage targets every connection of one session.
type BroadcastMessage struct {
	SessionKey string
	Message    *Message
}

// NewHub creates a hub and starts its event loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.SessionKey] == nil {
				h.conns[conn.SessionKey] = make(map[*Connection]bool)
			}
			h.conns[conn.SessionKey][conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.conns[conn.SessionKey]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.conns, conn.SessionKey)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.SessionKey] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToSession sends a message to every connection of a session
// (implements service.Broadcaster).
func (h *Hub) BroadcastToSession(sessionKey, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionKey: sessionKey,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
