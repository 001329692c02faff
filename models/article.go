package models

import (
	"gorm.io/gorm"
)

// Article is a blog post shown on the public site. Content is kept in both
// languages; unpublished articles are visible only in the back office.
type Article struct {
	gorm.Model
	TitleHe   string `json:"title_he"`
	TitleEn   string `json:"title_en"`
	SummaryHe string `json:"summary_he"`
	SummaryEn string `json:"summary_en"`
	ContentHe string `json:"content_he" gorm:"type:text"`
	ContentEn string `json:"content_en" gorm:"type:text"`
	ImageURL  string `json:"image_url"`
	Category  string `json:"category"`
	Published bool   `json:"published" gorm:"default:false"`
}
