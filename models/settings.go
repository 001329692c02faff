package models

import (
	"gorm.io/gorm"
)

// SiteSettings is a single-row table with the clinic details shown on the
// site and the Calendly integration toggle. The Calendly fields used to live
// in browser local storage; they are server side so every visitor sees the
// same booking mode.
type SiteSettings struct {
	gorm.Model
	ClinicName      string `json:"clinic_name"`
	Address         string `json:"address"`
	PhoneNumber     string `json:"phone_number"`
	Email           string `json:"email"`
	AboutHe         string `json:"about_he" gorm:"type:text"`
	AboutEn         string `json:"about_en" gorm:"type:text"`
	CalendlyEnabled bool   `json:"calendly_enabled" gorm:"default:false"`
	CalendlyURL     string `json:"calendly_url"`
}
