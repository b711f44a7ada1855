package profileController

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/models"
	"github.com/Tej-ashwani/StudyNotion/utils"
	profileValidator "github.com/Tej-ashwani/StudyNotion/validators/profile"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpdateProfile edits the additional details linked to the user
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateProfile").(*profileValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Preload("Profile").First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	user.Profile.Gender = reqData.Gender
	user.Profile.DateOfBirth = reqData.DateOfBirth
	user.Profile.About = reqData.About
	user.Profile.ContactNumber = reqData.ContactNumber

	if err := db.Save(&user.Profile).Error; err != nil {
		log.Printf("Error updating profile %d: %v", user.ProfileID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully", user.Profile)
}

// DeleteAccount removes the user together with everything hanging off the
// account: profile, progress records, enrollment membership and reviews.
// One transaction, so a failed step never leaves the account half deleted.
func DeleteAccount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Drop the user from every course enrolled-list
		if err := tx.Model(&user).Association("Courses").Clear(); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.CourseProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RatingAndReview{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Profile{}, user.ProfileID).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		log.Printf("Error deleting user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "User could not be deleted successfully", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully", nil)
}

// GetUserDetails returns the caller's account with profile details
func GetUserDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Preload("Profile").First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User data fetched successfully", user)
}

// enrolledCourse is a course summary with computed duration and progress
type enrolledCourse struct {
	models.Course
	TotalDuration      string  `json:"totalDuration"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// GetEnrolledCourses lists the caller's courses with total duration and the
// share of subsections completed.
func GetEnrolledCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Preload("Courses.Sections.SubSections").First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Could not find user with the provided ID", nil)
	}

	enrolled := make([]enrolledCourse, 0, len(user.Courses))
	for _, course := range user.Courses {
		var totalSeconds int64
		var subSectionCount int
		for _, section := range course.Sections {
			for _, sub := range section.SubSections {
				if seconds, err := strconv.ParseInt(sub.TimeDuration, 10, 64); err == nil {
					totalSeconds += seconds
				}
			}
			subSectionCount += len(section.SubSections)
		}

		var completedCount int
		var progress models.CourseProgress
		if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).
			First(&progress).Error; err == nil {
			completedCount = len(progress.CompletedVideos)
		}

		percentage := 100.0
		if subSectionCount > 0 {
			// two decimal places
			percentage = float64(int(float64(completedCount)/float64(subSectionCount)*100*100+0.5)) / 100
		}

		enrolled = append(enrolled, enrolledCourse{
			Course:             *course,
			TotalDuration:      convertSecondsToDuration(totalSeconds),
			ProgressPercentage: percentage,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully", enrolled)
}

// convertSecondsToDuration formats seconds as "2h 15m" style strings
func convertSecondsToDuration(totalSeconds int64) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// UpdateDisplayPicture uploads a new avatar to the media host
func UpdateDisplayPicture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	fileHeader, err := c.FormFile("displayPicture")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Display picture file is required!", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read display picture!", nil)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read display picture!", nil)
	}

	uploaded, err := utils.UploadMedia(fileHeader.Filename, data)
	if err != nil {
		log.Printf("Error uploading display picture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload image!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	if err := db.Model(&user).Update("image", uploaded.SecureURL).Error; err != nil {
		log.Printf("Error updating display picture for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update image!", nil)
	}

	user.Image = uploaded.SecureURL
	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image updated successfully", user)
}

// instructorCourseStats is one dashboard row per owned course
type instructorCourseStats struct {
	CourseID              uint    `json:"courseId"`
	CourseName            string  `json:"courseName"`
	CourseDescription     string  `json:"courseDescription"`
	TotalStudentsEnrolled int     `json:"totalStudentsEnrolled"`
	TotalAmountGenerated  float64 `json:"totalAmountGenerated"`
}

// InstructorDashboard summarises enrollment and revenue per owned course
func InstructorDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.
		Where("instructor_id = ?", userID).
		Preload("Students").
		Find(&courses).Error; err != nil {
		log.Printf("Error fetching instructor courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	stats := make([]instructorCourseStats, 0, len(courses))
	for _, course := range courses {
		enrolled := len(course.Students)
		stats = append(stats, instructorCourseStats{
			CourseID:              course.ID,
			CourseName:            course.CourseName,
			CourseDescription:     course.CourseDescription,
			TotalStudentsEnrolled: enrolled,
			TotalAmountGenerated:  float64(enrolled) * course.Price,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor dashboard fetched successfully", stats)
}
