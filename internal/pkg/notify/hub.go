// Package notify delivers the transient success notifications that
// accompany every completed store mutation. Notifications are best-effort:
// they are logged, broadcast to any connected websocket clients, and
// dropped when nobody can take them. A notification never blocks or fails
// the mutation that produced it. There is no failure notification path
// because store mutations cannot fail.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Notification is one transient success message.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Publisher is the side of the hub the stores see.
type Publisher interface {
	// Success publishes a transient success notification.
	Success(message string)
}

// Hub maintains the set of active clients and broadcasts notifications to
// them.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Channel for outbound notifications
	broadcast chan *Notification

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Notification, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and broadcasts.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case notification := <-h.broadcast:
			h.broadcastNotification(notification)
		}
	}
}

// Success implements Publisher. The send is non-blocking: when the
// broadcast buffer is full the notification is only logged.
func (h *Hub) Success(message string) {
	n := &Notification{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: time.Now(),
	}

	h.logger.Info().Str("notification", message).Msg("Mutation completed")

	select {
	case h.broadcast <- n:
	default:
		h.logger.Debug().Str("notification", message).Msg("Notification buffer full, dropped")
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.logger.Info().Str("addr", client.conn.RemoteAddr().String()).Msg("Notification client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.Info().Msg("Notification client unregistered")
	}
}

func (h *Hub) broadcastNotification(n *Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to marshal notification")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// Slow client, skip rather than stall the broadcast.
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
