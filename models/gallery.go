package models

import (
	"gorm.io/gorm"
)

type GalleryImage struct {
	gorm.Model
	TitleHe      string `json:"title_he"`
	TitleEn      string `json:"title_en"`
	ImageURL     string `json:"image_url"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
}
