package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseProgress tracks which subsections a user has completed in a course.
// Exactly one row may exist per (user, course) pair; the unique index is what
// keeps a replayed payment verification from enrolling the same user twice.
type CourseProgress struct {
	gorm.Model
	UserID          uint                      `json:"userId" gorm:"uniqueIndex:idx_user_course_progress;not null"`
	CourseID        uint                      `json:"courseId" gorm:"uniqueIndex:idx_user_course_progress;not null"`
	CompletedVideos datatypes.JSONSlice[uint] `json:"completedVideos"`
}
