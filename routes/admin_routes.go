package routes

import (
	"github.com/arshia84/bazaarche/handlers"
	"github.com/arshia84/bazaarche/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/stats", handlers.AdminGetStats)

	ads := admin.Group("/ads")
	ads.Get("", handlers.AdminGetAds)
	ads.Get("/needing-archive", handlers.AdminListNeedingArchive)
	ads.Get("/needing-warning", handlers.AdminListNeedingWarning)
	ads.Post("/archive-stale", handlers.AdminArchiveStale)
	ads.Put("/:adId/status", handlers.AdminUpdateAdStatus)
	ads.Delete("/:adId", handlers.AdminDeleteAd)

	messages := admin.Group("/messages")
	messages.Get("", handlers.AdminGetMessages)
	messages.Delete("/:messageId", handlers.AdminDeleteMessage)

	admin.Post("/import", handlers.AdminImportListings)
}
