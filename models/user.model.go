package models

import (
	"time"

	"gorm.io/gorm"
)

// Account types gate route access through the role middlewares.
const (
	RoleStudent    = "Student"
	RoleInstructor = "Instructor"
	RoleAdmin      = "Admin"
)

type User struct {
	gorm.Model
	FirstName   string `json:"firstName" gorm:"not null"`
	LastName    string `json:"lastName" gorm:"not null"`
	Email       string `json:"email" gorm:"unique;not null"`
	Password    string `json:"-" gorm:"not null"`
	AccountType string `json:"accountType" gorm:"default:'Student'"`
	Image       string `json:"image"`
	Active      bool   `json:"active" gorm:"default:true"`
	Approved    bool   `json:"approved" gorm:"default:true"`

	ProfileID uint    `json:"-"`
	Profile   Profile `json:"additionalDetails" gorm:"foreignKey:ProfileID"`

	// Enrolled courses; membership is kept in lockstep with CourseProgress
	// rows by the enrollment transaction.
	Courses []*Course `json:"courses,omitempty" gorm:"many2many:course_enrollments"`

	// Password reset state
	Token                string     `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
}
