package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// TimeRange is a sub-interval of a working day, "HH:MM" in 24h format.
type TimeRange struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// BreakTimes is stored as a JSONB column on the weekly availability record.
type BreakTimes []TimeRange

// Value implements the driver.Valuer interface
func (b BreakTimes) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (b *BreakTimes) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal BreakTimes: unsupported type %T", value)
	}

	return json.Unmarshal(data, b)
}

// WeeklyAvailability holds the clinic's recurring hours for one weekday.
// At most one record exists per day; a missing record means the day is closed.
type WeeklyAvailability struct {
	gorm.Model
	DayOfWeek  DayOfWeek  `json:"day_of_week" gorm:"uniqueIndex"`
	StartTime  string     `json:"start_time"` // Format "HH:MM" in 24h
	EndTime    string     `json:"end_time"`   // Format "HH:MM" in 24h
	IsActive   bool       `json:"is_active" gorm:"default:true"`
	BreakTimes BreakTimes `json:"break_times" gorm:"type:jsonb"`
}
