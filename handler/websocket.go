package handler

import (
	"context"

	"foundation_backend/constants"

	"github.com/gofiber/contrib/websocket"
)

// CheckinFeed streams successful redemptions to the admin dashboard. Each
// connection gets its own subscription to the redis check-in channel.
func (h *Handler) CheckinFeed(c *websocket.Conn) {
	defer c.Close()

	if h.Redis == nil {
		return
	}

	pubsub := h.Redis.Subscribe(context.Background(), constants.CheckinChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}
