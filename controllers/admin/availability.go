package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/redis"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// validateHours checks the HH:MM fields of a weekly record, including breaks.
func validateHours(start, end string, breaks models.BreakTimes) error {
	startMin, err := utils.ParseClock(start)
	if err != nil {
		return err
	}
	endMin, err := utils.ParseClock(end)
	if err != nil {
		return err
	}
	if startMin >= endMin {
		return fiber.NewError(fiber.StatusBadRequest, "start_time must be before end_time")
	}
	for _, br := range breaks {
		bs, err := utils.ParseClock(br.StartTime)
		if err != nil {
			return err
		}
		be, err := utils.ParseClock(br.EndTime)
		if err != nil {
			return err
		}
		if bs >= be {
			return fiber.NewError(fiber.StatusBadRequest, "break start must be before break end")
		}
		if bs < startMin || be > endMin {
			return fiber.NewError(fiber.StatusBadRequest, "break must fall within working hours")
		}
	}
	return nil
}

// GetWeeklyAvailability returns all weekly availability records
func GetWeeklyAvailability(c *fiber.Ctx) error {
	var records []models.WeeklyAvailability
	if err := db.DB.Order("day_of_week").Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get availability",
		})
	}
	return c.JSON(records)
}

// CreateWeeklyAvailability creates or replaces the record for a weekday.
// One record per day; posting an existing day overwrites it.
func CreateWeeklyAvailability(c *fiber.Ctx) error {
	record := new(models.WeeklyAvailability)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if record.DayOfWeek < models.Sunday || record.DayOfWeek > models.Saturday {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "day_of_week must be between 0 and 6",
		})
	}
	if err := validateHours(record.StartTime, record.EndTime, record.BreakTimes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var existing models.WeeklyAvailability
	if db.DB.Where("day_of_week = ?", record.DayOfWeek).First(&existing).RowsAffected > 0 {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}
	if err := db.DB.Save(record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save availability",
		})
	}

	redis.InvalidateSlots()
	return c.JSON(record)
}

// UpdateWeeklyAvailability updates an existing weekly record by ID
func UpdateWeeklyAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	var record models.WeeklyAvailability
	if err := db.DB.First(&record, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability record not found",
		})
	}
	if err := c.BodyParser(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validateHours(record.StartTime, record.EndTime, record.BreakTimes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err := db.DB.Save(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update availability",
		})
	}

	redis.InvalidateSlots()
	return c.JSON(record)
}

// DeleteWeeklyAvailability removes a weekly record; the day becomes closed
func DeleteWeeklyAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	var record models.WeeklyAvailability
	if err := db.DB.First(&record, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability record not found",
		})
	}
	if err := db.DB.Delete(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete availability",
		})
	}

	redis.InvalidateSlots()
	return c.SendStatus(fiber.StatusNoContent)
}

// GetDateExceptions returns all date exceptions, soonest first
func GetDateExceptions(c *fiber.Ctx) error {
	var exceptions []models.DateException
	if err := db.DB.Order("date").Find(&exceptions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get exceptions",
		})
	}
	return c.JSON(exceptions)
}

// CreateDateException creates or replaces the exception for a date. At most
// one exception exists per date; the newest write wins.
func CreateDateException(c *fiber.Ctx) error {
	exception := new(models.DateException)
	if err := c.BodyParser(exception); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if exception.Type != models.ExceptionUnavailable && exception.Type != models.ExceptionCustomHours {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "type must be unavailable or custom_hours",
		})
	}
	if exception.Type == models.ExceptionCustomHours {
		if err := validateHours(exception.StartTime, exception.EndTime, nil); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	dayStart, dayEnd := utils.DayBounds(exception.Date)
	exception.Date = dayStart

	var existing models.DateException
	if db.DB.Where("date >= ? AND date < ?", dayStart, dayEnd).First(&existing).RowsAffected > 0 {
		exception.ID = existing.ID
		exception.CreatedAt = existing.CreatedAt
	}
	if err := db.DB.Save(exception).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save exception",
		})
	}

	redis.InvalidateSlots()
	return c.JSON(exception)
}

// UpdateDateException updates an existing exception by ID
func UpdateDateException(c *fiber.Ctx) error {
	id := c.Params("id")
	var exception models.DateException
	if err := db.DB.First(&exception, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Exception not found",
		})
	}
	if err := c.BodyParser(&exception); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if exception.Type == models.ExceptionCustomHours {
		if err := validateHours(exception.StartTime, exception.EndTime, nil); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}
	if err := db.DB.Save(&exception).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update exception",
		})
	}

	redis.InvalidateSlots()
	return c.JSON(exception)
}

// DeleteDateException removes an exception; the weekly schedule applies again
func DeleteDateException(c *fiber.Ctx) error {
	id := c.Params("id")
	var exception models.DateException
	if err := db.DB.First(&exception, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Exception not found",
		})
	}
	if err := db.DB.Delete(&exception).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete exception",
		})
	}

	redis.InvalidateSlots()
	return c.SendStatus(fiber.StatusNoContent)
}
