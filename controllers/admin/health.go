package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
)

// GetHealthDeclarations lists submitted health declarations, newest first
func GetHealthDeclarations(c *fiber.Ctx) error {
	query := db.DB.Order("created_at DESC")
	if c.Query("reviewed") == "false" {
		query = query.Where("reviewed = ?", false)
	}

	var declarations []models.HealthDeclaration
	if err := query.Find(&declarations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch health declarations",
		})
	}
	return c.JSON(declarations)
}

// GetHealthDeclaration returns one declaration by ID
func GetHealthDeclaration(c *fiber.Ctx) error {
	id := c.Params("id")
	var declaration models.HealthDeclaration
	if err := db.DB.First(&declaration, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Health declaration not found",
		})
	}
	return c.JSON(declaration)
}

// MarkHealthDeclarationReviewed flags a declaration as handled
func MarkHealthDeclarationReviewed(c *fiber.Ctx) error {
	id := c.Params("id")
	var declaration models.HealthDeclaration
	if err := db.DB.First(&declaration, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Health declaration not found",
		})
	}
	declaration.Reviewed = true
	if err := db.DB.Save(&declaration).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update health declaration",
		})
	}
	return c.JSON(declaration)
}

// DeleteHealthDeclaration removes a declaration
func DeleteHealthDeclaration(c *fiber.Ctx) error {
	id := c.Params("id")
	var declaration models.HealthDeclaration
	if err := db.DB.First(&declaration, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Health declaration not found",
		})
	}
	if err := db.DB.Delete(&declaration).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete health declaration",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
