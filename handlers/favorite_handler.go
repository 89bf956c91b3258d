package handlers

import (
	"errors"

	"github.com/arshia84/bazaarche/database"
	"github.com/arshia84/bazaarche/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFavorites returns the caller's bookmarked ads with category embedded.
func GetFavorites(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var ads []models.Ad
	if err := database.DB.
		Preload("Category").
		Joins("JOIN favorites ON favorites.ad_id = ads.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc").
		Find(&ads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch favorites"})
	}

	return c.JSON(ads)
}

// ToggleFavorite bookmarks an ad, or removes the bookmark if it exists.
// On failure the caller's favorite state is unchanged.
func ToggleFavorite(c *fiber.Ctx) error {
	userID := currentUserID(c)

	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ad id"})
	}

	var favorite models.Favorite
	err = database.DB.Where("user_id = ? AND ad_id = ?", userID, adID).First(&favorite).Error
	switch {
	case err == nil:
		if err := database.DB.Delete(&favorite).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove favorite"})
		}
		return c.JSON(fiber.Map{"favorited": false})
	case errors.Is(err, gorm.ErrRecordNotFound):
		favorite = models.Favorite{UserID: userID, AdID: adID}
		if err := database.DB.Create(&favorite).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add favorite"})
		}
		return c.JSON(fiber.Map{"favorited": true})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to toggle favorite"})
	}
}

// GetAdFavoriteCount is public: ad cards show how many users bookmarked an ad.
func GetAdFavoriteCount(c *fiber.Ctx) error {
	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ad id"})
	}

	var count int64
	if err := database.DB.Model(&models.Favorite{}).Where("ad_id = ?", adID).Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count favorites"})
	}

	return c.JSON(fiber.Map{"count": count})
}
