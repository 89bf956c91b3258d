package routes

import (
	"github.com/arshia84/bazaarche/handlers"
	"github.com/arshia84/bazaarche/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/ads", middleware.Protected(), handlers.CreateAd)
	api.Post("/ads/predict-category", middleware.Protected(), handlers.PredictAdCategory)
	api.Post("/ads/:adId/renew", middleware.Protected(), handlers.RenewAd)
	api.Post("/ads/:adId/archive", middleware.Protected(), handlers.ArchiveAd)
	api.Delete("/ads/:adId", middleware.Protected(), handlers.DeleteAd)

	my := api.Group("/my", middleware.Protected())
	my.Get("/ads", handlers.GetMyAds)
	my.Get("/ads/warnings", handlers.GetMyAdWarnings)
}
