package admin

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/redis"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// GetAllAppointments lists appointments for the back office. Supports
// optional status and date range filters.
func GetAllAppointments(c *fiber.Ctx) error {
	query := db.DB.Preload("Service").Order("start_time")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		fromDate, err := utils.ParseDate(from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid from date",
				Error:   err.Error(),
			})
		}
		query = query.Where("start_time >= ?", fromDate)
	}
	if to := c.Query("to"); to != "" {
		toDate, err := utils.ParseDate(to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid to date",
				Error:   err.Error(),
			})
		}
		query = query.Where("start_time < ?", toDate.AddDate(0, 0, 1))
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns one appointment by ID
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Service").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment lets the practitioner book a client in directly. The
// slot must still be free; unlike the public path there is no working-window
// check, so out-of-hours bookings are allowed.
func CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if db.DB.First(&service, appointment.ServiceID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}
	appointment.EndTime = appointment.StartTime.Add(service.Duration.ToDuration())

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		available, err := utils.CheckAvailability(tx, appointment.StartTime, appointment.EndTime)
		if err != nil {
			return err
		}
		if !available {
			return errSlotTaken
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		if errors.Is(err, errSlotTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Time slot not available",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots()

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

var errSlotTaken = errors.New("time slot not available")

// UpdateAppointmentStatus applies a status transition and notifies the client
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type StatusRequest struct {
		Status models.AppointmentStatus `json:"status"`
	}
	req := new(StatusRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Service").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.UpdateStatus(db.DB, req.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	// A cancellation frees the slot, a confirmation fixes it; either way the
	// cached availability is stale now.
	redis.InvalidateSlots()

	sendStatusEmail(&appointment)

	return c.JSON(appointment)
}

// DeleteAppointment removes an appointment row entirely. Cancellation via
// status is preferred; this exists for cleaning up mistakes.
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots()

	return c.SendStatus(fiber.StatusNoContent)
}

func sendStatusEmail(appointment *models.Appointment) {
	if appointment.ClientEmail == "" {
		return
	}

	var subject, intro string
	switch appointment.Status {
	case models.StatusConfirmed:
		subject = "Appointment Confirmed"
		intro = "Your appointment has been confirmed."
	case models.StatusCancelled:
		subject = "Appointment Cancelled"
		intro = "Your appointment has been cancelled."
	default:
		return
	}

	start := utils.ToClinicTime(appointment.StartTime)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<ul>
			<li><strong>Treatment:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Leah Genish - Complementary Medicine</p>
	`, appointment.ClientName, intro, appointment.Service.NameEn,
		start.Format("2006-01-02"), start.Format("15:04"))

	if err := utils.SendEmail(appointment.ClientEmail, subject, body); err != nil {
		log.Printf("Failed to send status email for appointment %d: %v", appointment.ID, err)
	}
}
