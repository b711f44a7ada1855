package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CourseStatusDraft     = "Draft"
	CourseStatusPublished = "Published"
)

// Course is the catalog entity. Students, Sections and Ratings mirror the
// reference lists the frontend expects to be populated together.
type Course struct {
	gorm.Model
	CourseName        string                      `json:"courseName" gorm:"not null"`
	CourseDescription string                      `json:"courseDescription" gorm:"type:text"`
	WhatYouWillLearn  string                      `json:"whatYouWillLearn" gorm:"type:text"`
	Price             float64                     `json:"price" gorm:"not null"`
	Thumbnail         string                      `json:"thumbnail"`
	Tag               datatypes.JSONSlice[string] `json:"tag"`
	Instructions      datatypes.JSONSlice[string] `json:"instructions"`
	Status            string                      `json:"status" gorm:"default:'Draft'"`

	InstructorID uint  `json:"-" gorm:"index;not null"`
	Instructor   *User `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`

	CategoryID *uint     `json:"-" gorm:"index"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	Sections []Section         `json:"courseContent,omitempty" gorm:"foreignKey:CourseID"`
	Ratings  []RatingAndReview `json:"ratingAndReviews,omitempty" gorm:"foreignKey:CourseID"`
	Students []*User           `json:"studentsEnrolled,omitempty" gorm:"many2many:course_enrollments"`
}
