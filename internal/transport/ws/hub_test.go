package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, conn *Connection) Message {
	t.Helper()
	select {
	case data := <-conn.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		panic("unreachable")
	}
}

func TestBroadcastReachesSessionConnections(t *testing.T) {
	hub := NewHub()

	a := &Connection{SessionKey: "sess-1", Send: make(chan []byte, 8), Hub: hub}
	b := &Connection{SessionKey: "sess-1", Send: make(chan []byte, 8), Hub: hub}
	hub.Register(a)
	hub.Register(b)

	hub.BroadcastToSession("sess-1", string(MsgRoundScored), map[string]int{"delta": 20})

	for _, conn := range []*Connection{a, b} {
		msg := receive(t, conn)
		assert.Equal(t, MsgRoundScored, msg.Type)

		var payload map[string]int
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, 20, payload["delta"])
	}
}

func TestBroadcastDoesNotCrossSessions(t *testing.T) {
	hub := NewHub()

	mine := &Connection{SessionKey: "sess-1", Send: make(chan []byte, 8), Hub: hub}
	other := &Connection{SessionKey: "sess-2", Send: make(chan []byte, 8), Hub: hub}
	hub.Register(mine)
	hub.Register(other)

	hub.BroadcastToSession("sess-1", string(MsgGameOver), map[string]string{"winner": "hans"})

	receive(t, mine)
	select {
	case <-other.Send:
		t.Fatal("message leaked to another session")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterClosesSend(t *testing.T) {
	hub := NewHub()

	conn := &Connection{SessionKey: "sess-1", Send: make(chan []byte, 8), Hub: hub}
	hub.Register(conn)
	hub.Unregister(conn)

	select {
	case _, open := <-conn.Send:
		assert.False(t, open, "send channel closed on unregister")
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
}
