package handlers

import (
	"strings"

	"github.com/arshia84/bazaarche/database"
	"github.com/arshia84/bazaarche/models"
	"github.com/gofiber/fiber/v2"
)

type SearchResponse struct {
	Ads                 []models.Ad       `json:"ads"`
	SuggestedCategories []models.Category `json:"suggested_categories"`
}

// SearchAds matches active ads on title or description and suggests
// categories whose name matches the term.
func SearchAds(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		return c.JSON(SearchResponse{Ads: []models.Ad{}, SuggestedCategories: []models.Category{}})
	}

	pattern := "%" + term + "%"

	var ads []models.Ad
	if err := database.DB.
		Preload("Category").
		Where("status = ?", models.AdStatusActive).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at desc").
		Limit(20).
		Find(&ads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Search failed"})
	}

	var categories []models.Category
	if err := database.DB.
		Where("name ILIKE ?", pattern).
		Order("name").
		Limit(5).
		Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Search failed"})
	}

	return c.JSON(SearchResponse{Ads: ads, SuggestedCategories: categories})
}

// SearchSuggestions extracts title words containing the term from active ads.
func SearchSuggestions(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("q"))
	if len(term) < 2 {
		return c.JSON([]string{})
	}

	var titles []string
	if err := database.DB.
		Model(&models.Ad{}).
		Where("status = ? AND title ILIKE ?", models.AdStatusActive, "%"+term+"%").
		Limit(5).
		Pluck("title", &titles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Search failed"})
	}

	lowerTerm := strings.ToLower(term)
	seen := make(map[string]bool)
	suggestions := make([]string, 0, 5)
	for _, title := range titles {
		for _, word := range strings.Fields(title) {
			if len(word) <= 2 || !strings.Contains(strings.ToLower(word), lowerTerm) {
				continue
			}
			if seen[word] {
				continue
			}
			seen[word] = true
			suggestions = append(suggestions, word)
			if len(suggestions) == 5 {
				return c.JSON(suggestions)
			}
		}
	}

	return c.JSON(suggestions)
}
