package notify

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler upgrades HTTP connections into notification subscriptions.
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new websocket notification handler.
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

// HandleConnection upgrades the request and registers the client with the
// hub. The route is mounted behind the session gate, so only an
// authenticated principal can subscribe.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade notification connection")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, 16),
		logger: h.logger,
	}
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
