package server

import (
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocketClient wraps a WebSocket connection for browser-based play.
// Writes are serialized: the session's notifier and state pushes share
// the connection.
type WebSocketClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewWebSocketClient creates a new WebSocketClient from a WebSocket connection.
func NewWebSocketClient(conn *websocket.Conn, maxMessageSize int64) *WebSocketClient {
	if maxMessageSize > 0 {
		conn.SetReadLimit(maxMessageSize)
	}

	return &WebSocketClient{conn: conn}
}

// ReadCommand reads and decodes the next command (blocking).
func (c *WebSocketClient) ReadCommand() (Command, error) {
	var cmd Command
	err := c.conn.ReadJSON(&cmd)
	return cmd, err
}

// WriteEvent encodes and sends an event to the client.
func (c *WebSocketClient) WriteEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(event)
}

// Close closes the WebSocket connection.
func (c *WebSocketClient) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the remote address as a string.
func (c *WebSocketClient) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
