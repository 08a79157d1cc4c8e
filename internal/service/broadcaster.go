package service

// Broadcaster pushes game events to connected clients. Implemented by the
// WebSocket hub; optional for services.
type Broadcaster interface {
	BroadcastToSession(sessionKey, msgType string, payload interface{})
}
