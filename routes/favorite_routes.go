package routes

import (
	"github.com/arshia84/bazaarche/handlers"
	"github.com/arshia84/bazaarche/middleware"
	"github.com/gofiber/fiber/v2"
)

func FavoriteRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	favorites := api.Group("/favorites", middleware.Protected())
	favorites.Get("", handlers.GetFavorites)
	favorites.Post("/:adId/toggle", handlers.ToggleFavorite)
}
