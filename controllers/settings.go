package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
)

// GetSiteSettings returns the public site settings: clinic details and the
// Calendly booking toggle.
func GetSiteSettings(c *fiber.Ctx) error {
	var settings models.SiteSettings
	if db.DB.First(&settings).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Settings not found",
		})
	}
	return c.JSON(settings)
}
