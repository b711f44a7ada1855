package models

import "gorm.io/gorm"

// Profile holds the optional personal details linked from a user record.
type Profile struct {
	gorm.Model
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"dateOfBirth"`
	About         string `json:"about" gorm:"type:text"`
	ContactNumber string `json:"contactNumber"`
}
