package models

import "gorm.io/gorm"

type SubSection struct {
	gorm.Model
	SectionID    uint   `json:"sectionId" gorm:"index;not null"`
	Title        string `json:"title" gorm:"not null"`
	TimeDuration string `json:"timeDuration"` // seconds, as reported by the media host
	Description  string `json:"description" gorm:"type:text"`
	VideoURL     string `json:"videoUrl"`
}
