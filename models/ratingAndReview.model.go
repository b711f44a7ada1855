package models

import "gorm.io/gorm"

// RatingAndReview allows at most one review per (user, course) pair. The
// handler checks first, the unique index settles concurrent submissions.
type RatingAndReview struct {
	gorm.Model
	UserID   uint    `json:"userId" gorm:"uniqueIndex:idx_user_course_rating;not null"`
	User     *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CourseID uint    `json:"courseId" gorm:"uniqueIndex:idx_user_course_rating;not null"`
	Rating   float64 `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Review   string  `json:"review" gorm:"type:text"`
}
