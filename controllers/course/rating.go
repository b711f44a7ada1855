package courseController

import (
	"log"

	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/models"
	courseValidator "github.com/Tej-ashwani/StudyNotion/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateRating records a review from an enrolled student. The handler check
// keeps the common case friendly; the unique index on (user, course) is what
// actually guarantees at most one review when two submissions race.
func CreateRating(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateRating").(*courseValidator.CreateRatingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Only enrolled students may review
	var enrolled int64
	db.Table("course_enrollments").
		Where("course_id = ? AND user_id = ?", reqData.CourseID, userID).
		Count(&enrolled)
	if enrolled == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student is not enrolled in the course", nil)
	}

	var existing models.RatingAndReview
	if err := db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is already reviewed by the user", nil)
	}

	rating := models.RatingAndReview{
		UserID:   userID,
		CourseID: reqData.CourseID,
		Rating:   reqData.Rating,
		Review:   reqData.Review,
	}
	if err := db.Create(&rating).Error; err != nil {
		// The unique index turns the concurrent duplicate into an error here
		log.Printf("Error creating rating: %v", err)
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is already reviewed by the user", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating and Review created Successfully", rating)
}

// GetAverageRating returns the mean rating of a course
func GetAverageRating(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseID").(*courseValidator.CourseIDRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var average float64
	if err := database.Database.Db.
		Model(&models.RatingAndReview{}).
		Where("course_id = ?", reqData.CourseID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error; err != nil {
		log.Printf("Error computing average rating: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch average rating!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Average rating fetched successfully", fiber.Map{
		"averageRating": average,
	})
}

// GetAllRating lists every review, highest rated first
func GetAllRating(c *fiber.Ctx) error {
	var reviews []models.RatingAndReview
	if err := database.Database.Db.
		Preload("User").
		Order("rating desc").
		Find(&reviews).Error; err != nil {
		log.Printf("Error fetching reviews: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All reviews fetched successfully", reviews)
}
