package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	hub "github.com/hostelhub/hostelhub/websocket"
)

// FeedUpgradeRequired rejects plain HTTP requests on the feed endpoint.
func FeedUpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// AdminFeed streams new reservation events to connected back-office clients.
var AdminFeed = websocket.New(func(c *websocket.Conn) {
	hub.Register <- c
	defer func() {
		hub.Unregister <- c
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
})
