package handlers

import (
	"log"
	"strconv"

	"github.com/arshia84/bazaarche/database"
	"github.com/arshia84/bazaarche/models"
	"github.com/arshia84/bazaarche/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminGetAds lists every ad, optionally filtered by status.
func AdminGetAds(c *fiber.Ctx) error {
	query := database.DB.Preload("Category").Preload("User").Order("created_at desc")

	if status := c.Query("status"); status != "" {
		if !models.IsValidAdStatus(status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status filter"})
		}
		query = query.Where("status = ?", status)
	}

	var ads []models.Ad
	if err := query.Find(&ads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch ads"})
	}

	return c.JSON(ads)
}

type UpdateAdStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active expired rejected archived"`
}

var statusNotificationText = map[string]string{
	models.AdStatusActive:   "Your ad has been approved and is now live.",
	models.AdStatusRejected: "Your ad was rejected by a moderator.",
	models.AdStatusArchived: "Your ad has been archived.",
	models.AdStatusExpired:  "Your ad has expired.",
	models.AdStatusPending:  "Your ad was moved back to review.",
}

// AdminUpdateAdStatus is the moderation transition: pending → active/rejected,
// or any manual status change. The owner gets an ad_status notification.
func AdminUpdateAdStatus(c *fiber.Ctx) error {
	var req UpdateAdStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ad id"})
	}

	var ad models.Ad
	if err := database.DB.First(&ad, "id = ?", adID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ad not found"})
	}

	if err := database.DB.Model(&ad).Update("status", req.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update status"})
	}

	if err := services.CreateNotification(
		ad.UserID,
		models.NotificationTypeAdStatus,
		"Ad status updated",
		statusNotificationText[req.Status],
		map[string]interface{}{"ad_id": ad.ID.String(), "ad_title": ad.Title, "status": req.Status},
	); err != nil {
		log.Printf("Error creating status notification for ad %s: %v", ad.ID, err)
	}

	return c.JSON(fiber.Map{"message": "Status updated"})
}

// AdminArchiveStale manually triggers the same sweep the cron job runs,
// owner notifications included.
func AdminArchiveStale(c *fiber.Ctx) error {
	ads, err := services.SweepStaleAds()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to archive ads"})
	}

	if len(ads) == 0 {
		return c.JSON(fiber.Map{"message": "No ads need archiving", "archived_count": 0})
	}

	return c.JSON(fiber.Map{"message": "Ads archived successfully", "archived_count": len(ads), "archived_ads": ads})
}

func AdminDeleteAd(c *fiber.Ctx) error {
	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ad id"})
	}

	result := database.DB.Delete(&models.Ad{}, "id = ?", adID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete ad"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ad not found"})
	}

	return c.JSON(fiber.Map{"message": "Ad deleted"})
}

func AdminGetMessages(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	var messages []models.Message
	if err := database.DB.
		Order("created_at desc").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}

	return c.JSON(messages)
}

func AdminDeleteMessage(c *fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("messageId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid message id"})
	}

	var message models.Message
	if err := database.DB.First(&message, "id = ?", messageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Message not found"})
	}

	if err := database.DB.Delete(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete message"})
	}

	if !message.IsRead {
		pushUnreadCount(message.ReceiverID)
	}

	return c.JSON(fiber.Map{"message": "Message deleted"})
}

// AdminGetStats is the dashboard summary: ad counts per status, total users
// and unread messages.
func AdminGetStats(c *fiber.Ctx) error {
	statuses := []string{
		models.AdStatusPending,
		models.AdStatusActive,
		models.AdStatusExpired,
		models.AdStatusRejected,
		models.AdStatusArchived,
	}

	adCounts := make(map[string]int64, len(statuses))
	for _, status := range statuses {
		count, err := services.CountAdsByStatus(status)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count ads"})
		}
		adCounts[status] = count
	}

	var userCount int64
	if err := database.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count users"})
	}

	var unreadMessages int64
	if err := database.DB.Model(&models.Message{}).Where("is_read = ?", false).Count(&unreadMessages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count messages"})
	}

	return c.JSON(fiber.Map{
		"ads":             adCounts,
		"users":           userCount,
		"unread_messages": unreadMessages,
	})
}

func AdminListNeedingArchive(c *fiber.Ctx) error {
	ads, err := services.ListAdsNeedingArchive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch ads"})
	}
	return c.JSON(ads)
}

func AdminListNeedingWarning(c *fiber.Ctx) error {
	ads, err := services.ListAdsNeedingWarning()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch ads"})
	}
	return c.JSON(ads)
}

type ImportListingsRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// AdminImportListings scrapes an external classifieds page and returns the
// extracted ads for review before bulk-creating them.
func AdminImportListings(c *fiber.Ctx) error {
	var req ImportListingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ads, err := services.ScrapeListings(c.UserContext(), req.URL)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"listings": ads, "count": len(ads)})
}
