package controllers

import (
	"time"

	"gorm.io/gorm"

	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// daySchedule bundles everything the resolver needs for one calendar date.
type daySchedule struct {
	Weekly       *models.WeeklyAvailability
	Exception    *models.DateException
	Appointments []models.Appointment
}

// loadDaySchedule fetches the weekly record for the date's weekday, the date
// exception if one exists, and the day's non-cancelled appointments.
func loadDaySchedule(tx *gorm.DB, date time.Time) (daySchedule, error) {
	var sched daySchedule

	var weekly models.WeeklyAvailability
	err := tx.Where("day_of_week = ?", int(date.Weekday())).First(&weekly).Error
	if err == nil {
		sched.Weekly = &weekly
	} else if err != gorm.ErrRecordNotFound {
		return sched, err
	}

	dayStart, dayEnd := utils.DayBounds(date)

	var exception models.DateException
	err = tx.Where("date >= ? AND date < ?", dayStart, dayEnd).First(&exception).Error
	if err == nil {
		sched.Exception = &exception
	} else if err != gorm.ErrRecordNotFound {
		return sched, err
	}

	err = tx.
		Where("status <> ?", models.StatusCancelled).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Find(&sched.Appointments).Error
	if err != nil {
		return sched, err
	}

	return sched, nil
}
