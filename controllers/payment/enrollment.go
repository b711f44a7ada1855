package paymentController

import (
	"github.com/Tej-ashwani/StudyNotion/models"
	"github.com/Tej-ashwani/StudyNotion/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type enrollmentNotice struct {
	email      string
	firstName  string
	courseName string
}

// EnrollStudents runs the enrollment fan-out for every course in the list
// inside a single transaction: append the student to the course, create the
// empty progress record, and flip the payment ledger to VERIFIED. Either all
// courses in the batch are enrolled or none are, which keeps course
// membership and progress records in lockstep. Confirmation emails go out
// only after the transaction commits.
func EnrollStudents(db *gorm.DB, courseIDs []uint, userID uint, orderID, paymentID string) error {
	var notices []enrollmentNotice

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		for _, courseID := range courseIDs {
			var course models.Course
			if err := tx.First(&course, courseID).Error; err != nil {
				return ErrCourseNotFound
			}

			// Safe to replay: a course that is already enrolled is skipped
			var existing models.CourseProgress
			if err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).
				First(&existing).Error; err == nil {
				continue
			}

			if err := tx.Model(&course).Association("Students").Append(&user); err != nil {
				return err
			}

			progress := models.CourseProgress{
				UserID:          userID,
				CourseID:        courseID,
				CompletedVideos: datatypes.NewJSONSlice([]uint{}),
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}

			notices = append(notices, enrollmentNotice{
				email:      user.Email,
				firstName:  user.FirstName,
				courseName: course.CourseName,
			})
		}

		// Flip the capture-time ledger row; a webhook for an order captured
		// elsewhere gets a fresh VERIFIED row. The unique index on payment_id
		// rejects a concurrent duplicate inside the same transaction scope.
		var ledger models.PaymentOrder
		if err := tx.Where("order_id = ?", orderID).First(&ledger).Error; err != nil {
			ledger = models.PaymentOrder{
				OrderID:   orderID,
				PaymentID: &paymentID,
				UserID:    userID,
				Courses:   datatypes.NewJSONSlice(courseIDs),
				Status:    models.PaymentStatusVerified,
			}
			return tx.Create(&ledger).Error
		}

		return tx.Model(&ledger).Updates(map[string]interface{}{
			"payment_id": paymentID,
			"status":     models.PaymentStatusVerified,
		}).Error
	})
	if err != nil {
		return err
	}

	for _, n := range notices {
		utils.SendEnrollmentEmail(n.email, n.firstName, n.courseName)
	}

	return nil
}
