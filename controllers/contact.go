package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// SubmitContactMessage stores a contact-form message and forwards it to the
// clinic's mailbox.
func SubmitContactMessage(c *fiber.Ctx) error {
	message := new(models.ContactMessage)
	if err := c.BodyParser(message); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if message.Name == "" || message.Email == "" || message.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name, email and message are required",
		})
	}
	message.Read = false

	if err := db.DB.Create(message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save message",
			Error:   err.Error(),
		})
	}

	body := fmt.Sprintf(`
		<p>New message from the site contact form.</p>
		<ul>
			<li><strong>Name:</strong> %s</li>
			<li><strong>Email:</strong> %s</li>
			<li><strong>Phone:</strong> %s</li>
			<li><strong>Subject:</strong> %s</li>
		</ul>
		<p>%s</p>
	`, message.Name, message.Email, message.Phone, message.Subject, message.Message)
	if err := utils.SendEmail(utils.ClinicEmail(), "New Contact Message", body); err != nil {
		log.Printf("Failed to forward contact message: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}
