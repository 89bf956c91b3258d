package routes

import (
	"github.com/arshia84/bazaarche/handlers"
	"github.com/arshia84/bazaarche/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func ChatRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	conversations := api.Group("/conversations", middleware.Protected())
	conversations.Get("", handlers.GetConversations)
	conversations.Get("/thread", handlers.GetConversationThread)

	messages := api.Group("/messages", middleware.Protected())
	messages.Post("", handlers.SendMessage)
	messages.Get("/unread-count", handlers.GetUnreadCount)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
