package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

// FeedMessage is the envelope pushed to admin panel clients.
type FeedMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub fans session events out to every connected admin panel client.
// Clients only receive; inbound frames are discarded by the handler.
type Hub struct {
	logger    *logrus.Logger
	semaphore *Semaphore
	mu        sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex
}

func NewHub(logger *logrus.Logger, maxClients int) *Hub {
	return &Hub{
		logger:    logger,
		semaphore: NewSemaphore(maxClients),
		clients:   make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Register adds a client connection. It returns false when the hub is at
// capacity; the caller must close the connection in that case.
func (h *Hub) Register(conn *websocket.Conn) bool {
	if !h.semaphore.Acquire() {
		return false
	}
	h.mu.Lock()
	h.clients[conn] = &sync.Mutex{}
	h.mu.Unlock()
	h.logger.WithField("clients", h.semaphore.Count()).Debug("websocket client connected")
	return true
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		h.semaphore.Release()
	}
}

// Broadcast pushes one event to every client. A failed write drops that
// client; the rest still receive the message.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	data, err := json.Marshal(FeedMessage{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		h.logger.WithError(err).Error("failed to marshal feed message")
		return
	}

	h.mu.RLock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(h.clients))
	for conn, mu := range h.clients {
		conns[conn] = mu
	}
	h.mu.RUnlock()

	for conn, mu := range conns {
		mu.Lock()
		err := conn.WriteMessage(websocket.TextMessage, data)
		mu.Unlock()
		if err != nil {
			h.logger.WithError(err).Debug("dropping unresponsive websocket client")
			h.Unregister(conn)
			_ = conn.Close()
		}
	}
}

func (h *Hub) ClientCount() int {
	return h.semaphore.Count()
}
