package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
)

// GetContactMessages lists contact-form messages, newest first
func GetContactMessages(c *fiber.Ctx) error {
	query := db.DB.Order("created_at DESC")
	if c.Query("unread") == "true" {
		query = query.Where("read = ?", false)
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch messages",
		})
	}
	return c.JSON(messages)
}

// MarkContactMessageRead flags a message as read
func MarkContactMessageRead(c *fiber.Ctx) error {
	id := c.Params("id")
	var message models.ContactMessage
	if err := db.DB.First(&message, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Message not found",
		})
	}
	message.Read = true
	if err := db.DB.Save(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update message",
		})
	}
	return c.JSON(message)
}

// DeleteContactMessage removes a message
func DeleteContactMessage(c *fiber.Ctx) error {
	id := c.Params("id")
	var message models.ContactMessage
	if err := db.DB.First(&message, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Message not found",
		})
	}
	if err := db.DB.Delete(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete message",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
