package models

import (
	"gorm.io/gorm"
)

// Service is a treatment offered by the clinic. Names and descriptions are
// kept in both Hebrew and English; the site picks the field by language.
type Service struct {
	gorm.Model
	NameHe          string   `json:"name_he"`
	NameEn          string   `json:"name_en"`
	DescriptionHe   string   `json:"description_he"`
	DescriptionEn   string   `json:"description_en"`
	Duration        Duration `json:"duration" gorm:"type:jsonb"`
	Cost            float64  `json:"cost"`
	ImageURL        string   `json:"image_url"`
	Active          bool     `json:"active" gorm:"default:true"`
	DisplayOrder    int      `json:"display_order"`
	SlotGranularity int      `json:"slot_granularity"` // minutes between candidate slots; 0 means duration
}

// Granularity returns the slot step in minutes for this service.
func (s Service) Granularity() int {
	if s.SlotGranularity > 0 {
		return s.SlotGranularity
	}
	return s.Duration.TotalMinutes()
}
