package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string   `json:"name" gorm:"unique;not null"`
	Description string   `json:"description" gorm:"type:text"`
	Courses     []Course `json:"courses,omitempty" gorm:"foreignKey:CategoryID"`
}
