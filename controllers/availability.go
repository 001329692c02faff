package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/redis"
	"github.com/rafaelGenish111/leah-genish-api/scheduler"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// GetAvailableSlots returns the bookable start times for a date and service.
// Responds with {"availableSlots": [{"time": "HH:MM"}, ...]}.
func GetAvailableSlots(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	serviceID := c.QueryInt("serviceId")
	if serviceID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "serviceId query parameter is required",
		})
	}

	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if db.DB.First(&service, serviceID).RowsAffected == 0 || !service.Active {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	var cached []scheduler.Slot
	if redis.GetCachedSlots(dateStr, service.ID, &cached) {
		return c.JSON(fiber.Map{"availableSlots": cached})
	}

	sched, err := loadDaySchedule(db.DB, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load schedule",
			Error:   err.Error(),
		})
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
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve slots",
			Error:   err.Error(),
		})
	}

	redis.SetCachedSlots(dateStr, service.ID, slots)

	return c.JSON(fiber.Map{"availableSlots": slots})
}
