package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"tutorhub/pkg/logger"
)

// Client represents one signed-in portal viewer's WebSocket connection.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager tracks all active portal connections, one per viewer.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Info("Portal client connected: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.UserID]; ok {
					delete(m.clients, client.UserID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Portal client disconnected: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser delivers a payload to a specific viewer, dropping it when the
// viewer's send buffer is full rather than blocking the caller.
func (m *Manager) SendToUser(userID string, payload []byte) {
	m.mutex.RLock()
	client, ok := m.clients[userID]
	m.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- payload:
	default:
		logger.Warn("Dropping payload for %s: send buffer full", userID)
	}
}

// WritePump sends queued payloads to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		payload, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Error("Write to %s failed: %v", c.UserID, err)
			return
		}
	}
}
