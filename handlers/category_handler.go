package handlers

import (
	"github.com/arshia84/bazaarche/database"
	"github.com/arshia84/bazaarche/models"
	"github.com/gofiber/fiber/v2"
)

func ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.DB.Order("name").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(categories)
}
