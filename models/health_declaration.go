package models

import (
	"gorm.io/gorm"
)

// HealthDeclaration is the pre-treatment form clients fill in before a first
// visit. Answers are stored as free text alongside the declared conditions.
type HealthDeclaration struct {
	gorm.Model
	ClientName     string `json:"client_name"`
	ClientEmail    string `json:"client_email"`
	ClientPhone    string `json:"client_phone"`
	IDNumber       string `json:"id_number"`
	Conditions     string `json:"conditions" gorm:"type:text"`
	Medications    string `json:"medications" gorm:"type:text"`
	Allergies      string `json:"allergies" gorm:"type:text"`
	Pregnant       bool   `json:"pregnant"`
	Notes          string `json:"notes" gorm:"type:text"`
	SignatureInput string `json:"signature"`
	Reviewed       bool   `json:"reviewed" gorm:"default:false"`
}
