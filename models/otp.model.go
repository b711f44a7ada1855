package models

import (
	"time"

	"gorm.io/gorm"
)

type OTP struct {
	gorm.Model
	Email     string    `json:"email" gorm:"size:100;index;not null"`
	Code      string    `json:"code" gorm:"size:6;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
}
