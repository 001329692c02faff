package models

import (
	"gorm.io/gorm"
)

type ContactMessage struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text"`
	Read    bool   `json:"read" gorm:"default:false"`
}
