package models

import "gorm.io/gorm"

type Section struct {
	gorm.Model
	SectionName string       `json:"sectionName" gorm:"not null"`
	CourseID    uint         `json:"courseId" gorm:"index;not null"`
	SubSections []SubSection `json:"subSection,omitempty" gorm:"foreignKey:SectionID"`
}
