package routes

import (
	"github.com/arshia84/bazaarche/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/categories", handlers.ListCategories)
	api.Get("/ads", handlers.ListAds)
	api.Get("/ads/:adId", handlers.GetAd)
	api.Get("/ads/:adId/favorites/count", handlers.GetAdFavoriteCount)
	api.Get("/search", handlers.SearchAds)
	api.Get("/search/suggestions", handlers.SearchSuggestions)
}
