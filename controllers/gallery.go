package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
)

// GetGalleryImages returns the gallery, optionally filtered by category, in
// display order.
func GetGalleryImages(c *fiber.Ctx) error {
	query := db.DB.Order("display_order, id")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var images []models.GalleryImage
	if err := query.Find(&images).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch gallery",
		})
	}
	return c.JSON(images)
}
