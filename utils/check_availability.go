package utils

import (
	"time"

	"gorm.io/gorm"

	"github.com/rafaelGenish111/leah-genish-api/models"
)

// CheckAvailability reports whether the [startTime, endTime) interval is free
// of non-cancelled appointments. The check runs inside the booking
// transaction; identical-slot races that slip past it are stopped by the
// unique partial index on appointments.start_time.
func CheckAvailability(tx *gorm.DB, startTime, endTime time.Time) (bool, error) {
	var conflicting []models.Appointment
	err := tx.
		Where("status <> ?", models.StatusCancelled).
		Where("start_time < ? AND end_time > ?", endTime, startTime).
		Limit(1).
		Find(&conflicting).Error
	if err != nil {
		return false, err
	}
	return len(conflicting) == 0, nil
}
