package handlers

import (
	"errors"

	"github.com/arshia84/bazaarche/database"
	"github.com/arshia84/bazaarche/models"
	"github.com/arshia84/bazaarche/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateAdRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	CategoryID  string   `json:"category_id" validate:"required,uuid"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
	Phone       *string  `json:"phone"`
	Images      []string `json:"images"`
}

// CreateAd inserts a new listing. Every new ad starts as pending and only
// becomes visible once a moderator approves it.
func CreateAd(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateAdRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	categoryID, _ := uuid.Parse(req.CategoryID)
	var category models.Category
	if err := database.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown category"})
	}

	ad := models.Ad{
		UserID:      userID,
		CategoryID:  categoryID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Phone:       req.Phone,
		Status:      models.AdStatusPending,
		Images:      req.Images,
	}
	if err := database.DB.Create(&ad).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create ad"})
	}

	ad.Category = category
	return c.Status(fiber.StatusCreated).JSON(ad)
}

// ListAds returns active ads newest first, optionally filtered by category slug.
func ListAds(c *fiber.Ctx) error {
	query := database.DB.
		Preload("Category").
		Joins("JOIN categories ON categories.id = ads.category_id").
		Where("ads.status = ?", models.AdStatusActive).
		Order("ads.created_at desc")

	if slug := c.Query("category"); slug != "" {
		query = query.Where("categories.slug = ?", slug)
	}

	var ads []models.Ad
	if err := query.Find(&ads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch ads"})
	}

	return c.JSON(ads)
}

func GetAd(c *fiber.Ctx) error {
	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ad id"})
	}

	var ad models.Ad
	if err := database.DB.Preload("Category").First(&ad, "id = ?", adID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ad not found"})
	}

	return c.JSON(ad)
}

// GetMyAds returns the caller's ads in every status, so archived listings
// stay visible on the account page with a renew button.
func GetMyAds(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var ads []models.Ad
	if err := database.DB.
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&ads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch ads"})
	}

	return c.JSON(ads)
}

type AdWarningResponse struct {
	Ad               models.Ad `json:"ad"`
	DaysUntilArchive int       `json:"days_until_archive"`
}

// GetMyAdWarnings returns the caller's active ads inside the warning window,
// with the days left before each is archived.
func GetMyAdWarnings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	ads, err := services.ListAdsNeedingWarning()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch ads"})
	}

	warnings := make([]AdWarningResponse, 0)
	for _, ad := range ads {
		if ad.UserID != userID {
			continue
		}
		warnings = append(warnings, AdWarningResponse{
			Ad:               ad,
			DaysUntilArchive: services.DaysUntilArchive(ad.UpdatedAt),
		})
	}

	return c.JSON(warnings)
}

func loadOwnedAd(c *fiber.Ctx) (*models.Ad, error) {
	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ad id"})
	}

	var ad models.Ad
	if err := database.DB.First(&ad, "id = ?", adID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ad not found"})
	}

	if ad.UserID != currentUserID(c) && currentUserRole(c) != "admin" {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your ad"})
	}
	return &ad, nil
}

// RenewAd reactivates an archived ad owned by the caller.
func RenewAd(c *fiber.Ctx) error {
	ad, errResp := loadOwnedAd(c)
	if ad == nil {
		return errResp
	}

	if err := services.RenewAd(ad.ID); err != nil {
		if errors.Is(err, services.ErrAdNotRenewable) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to renew ad"})
	}

	return c.JSON(fiber.Map{"message": "Ad renewed"})
}

// ArchiveAd manually archives an ad owned by the caller.
func ArchiveAd(c *fiber.Ctx) error {
	ad, errResp := loadOwnedAd(c)
	if ad == nil {
		return errResp
	}

	if err := services.ArchiveAd(ad.ID); err != nil {
		if errors.Is(err, services.ErrAdAlreadyArchived) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to archive ad"})
	}

	return c.JSON(fiber.Map{"message": "Ad archived"})
}

func DeleteAd(c *fiber.Ctx) error {
	ad, errResp := loadOwnedAd(c)
	if ad == nil {
		return errResp
	}

	if err := database.DB.Delete(ad).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete ad"})
	}

	return c.JSON(fiber.Map{"message": "Ad deleted"})
}

type PredictCategoryRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// PredictAdCategory proxies the ML classifier to suggest a category while
// the user is still typing their ad.
func PredictAdCategory(c *fiber.Ctx) error {
	var req PredictCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	prediction, err := services.PredictCategory(req.Title, req.Description)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Category prediction unavailable"})
	}

	return c.JSON(prediction)
}
