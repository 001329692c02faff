package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// SubmitHealthDeclaration stores the pre-treatment form a client fills in
// before a first visit.
func SubmitHealthDeclaration(c *fiber.Ctx) error {
	declaration := new(models.HealthDeclaration)
	if err := c.BodyParser(declaration); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if declaration.ClientName == "" || declaration.SignatureInput == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name and signature are required",
		})
	}
	declaration.Reviewed = false

	if err := db.DB.Create(declaration).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save health declaration",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(declaration)
}
