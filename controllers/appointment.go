package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/redis"
	"github.com/rafaelGenish111/leah-genish-api/scheduler"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// BookingRequest is the public booking payload.
type BookingRequest struct {
	ServiceID   uint   `json:"serviceId"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
	Notes       string `json:"notes"`
}

// CreateAppointment books a slot for an anonymous client. The requested time
// must be one of the currently resolvable slots; freedom of the slot is
// rechecked inside the insert transaction so the loser of a race gets 409.
func CreateAppointment(c *fiber.Ctx) error {
	var req BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if req.ClientName == "" || req.ClientEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Client name and email are required",
		})
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
			Error:   err.Error(),
		})
	}
	startMinutes, err := utils.ParseClock(req.Time)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid time",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if db.DB.First(&service, req.ServiceID).RowsAffected == 0 || !service.Active {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	startTime := date.Add(time.Duration(startMinutes) * time.Minute)
	endTime := startTime.Add(service.Duration.ToDuration())

	appointment := models.Appointment{
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      models.StatusPending,
		ServiceID:   service.ID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Notes:       req.Notes,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// The requested time must be a slot the resolver would offer right
		// now: inside the working window, on the grid, clear of breaks and
		// existing bookings, and not already past.
		sched, err := loadDaySchedule(tx, date)
		if err != nil {
			return err
		}
		slots, err := scheduler.ResolveSlots(
			date,
			service,
			sched.Weekly,
			sched.Exception,
			scheduler.BookedRangesFor(sched.Appointments),
			time.Now(),
		)
		if err != nil {
			return err
		}
		requested := utils.FormatClock(startMinutes)
		offered := false
		for _, slot := range slots {
			if slot.Time == requested {
				offered = true
				break
			}
		}
		if !offered {
			return errSlotTaken
		}

		// Recheck freedom right before the insert.
		available, err := utils.CheckAvailability(tx, startTime, endTime)
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

	sendBookingEmails(&appointment, &service)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

var errSlotTaken = errors.New("time slot not available")

// sendBookingEmails notifies the client and the clinic. Failures are logged,
// not surfaced; the booking already exists.
func sendBookingEmails(appointment *models.Appointment, service *models.Service) {
	start := utils.ToClinicTime(appointment.StartTime)

	clientBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been received and is awaiting confirmation.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Treatment:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>We will send a confirmation shortly.</p>
		<p>Leah Genish - Complementary Medicine</p>
	`, appointment.ClientName, service.NameEn,
		start.Format("2006-01-02"), start.Format("15:04"))
	if err := utils.SendEmail(appointment.ClientEmail, "Appointment Received", clientBody); err != nil {
		log.Printf("Failed to send booking email to client: %v", err)
	}

	clinicBody := fmt.Sprintf(`
		<p>New booking request.</p>
		<ul>
			<li><strong>Client:</strong> %s (%s, %s)</li>
			<li><strong>Treatment:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Notes:</strong> %s</li>
		</ul>
	`, appointment.ClientName, appointment.ClientEmail, appointment.ClientPhone,
		service.NameHe, start.Format("2006-01-02"), start.Format("15:04"), appointment.Notes)
	if err := utils.SendEmail(utils.ClinicEmail(), "New Appointment Request", clinicBody); err != nil {
		log.Printf("Failed to send booking email to clinic: %v", err)
	}
}
