package models

import (
	"time"

	"gorm.io/gorm"
)

type ExceptionType string

const (
	ExceptionUnavailable ExceptionType = "unavailable"
	ExceptionCustomHours ExceptionType = "custom_hours"
)

// DateException overrides the weekly schedule for one calendar date, either
// closing the clinic or replacing the hours for that day.
type DateException struct {
	gorm.Model
	Date      time.Time     `json:"date" gorm:"uniqueIndex;type:date"`
	Type      ExceptionType `json:"type"`
	StartTime string        `json:"start_time"` // required when Type is custom_hours
	EndTime   string        `json:"end_time"`
	Reason    string        `json:"reason"`
}
