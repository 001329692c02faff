package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	gorm.Model
	StartTime   time.Time         `json:"start_time" gorm:"index;index:idx_appointments_slot,unique,where:status <> 'cancelled'"`
	EndTime     time.Time         `json:"end_time"`
	Status      AppointmentStatus `json:"status" gorm:"index"`
	ServiceID   uint              `json:"service_id"`
	Service     Service           `json:"service" gorm:"foreignKey:ServiceID"`
	ClientName  string            `json:"client_name"`
	ClientEmail string            `json:"client_email"`
	ClientPhone string            `json:"client_phone"`
	Notes       string            `json:"notes"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// Occupies reports whether the appointment still blocks its time slot.
// Cancelled appointments free their slot.
func (a *Appointment) Occupies() bool {
	return a.Status != StatusCancelled
}

// UpdateStatus applies a status transition and persists it. Allowed
// transitions: pending -> confirmed|cancelled, confirmed -> completed|cancelled.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}

	a.Status = newStatus
	return tx.Save(a).Error
}
