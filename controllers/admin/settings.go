package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
)

// GetSiteSettings returns the settings row for editing
func GetSiteSettings(c *fiber.Ctx) error {
	var settings models.SiteSettings
	if db.DB.First(&settings).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Settings not found",
		})
	}
	return c.JSON(settings)
}

// UpdateSiteSettings updates clinic details and the Calendly toggle
func UpdateSiteSettings(c *fiber.Ctx) error {
	var settings models.SiteSettings
	if db.DB.First(&settings).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Settings not found",
		})
	}
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if settings.CalendlyEnabled && settings.CalendlyURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "calendly_url is required when Calendly is enabled",
		})
	}
	if err := db.DB.Save(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update settings",
		})
	}
	return c.JSON(settings)
}
