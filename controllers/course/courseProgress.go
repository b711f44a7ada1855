package courseController

import (
	"log"

	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/models"
	courseValidator "github.com/Tej-ashwani/StudyNotion/validators/course"

	"github.com/gofiber/fiber/v2"
)

// UpdateCourseProgress marks a subsection as completed for the caller
func UpdateCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateProgress").(*courseValidator.UpdateProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subSection models.SubSection
	if err := db.First(&subSection, reqData.SubSectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid subsection", nil)
	}

	var progress models.CourseProgress
	if err := db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).
		First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course progress does not exist", nil)
	}

	for _, completed := range progress.CompletedVideos {
		if completed == reqData.SubSectionID {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Subsection already completed", nil)
		}
	}

	progress.CompletedVideos = append(progress.CompletedVideos, reqData.SubSectionID)
	if err := db.Save(&progress).Error; err != nil {
		log.Printf("Error updating course progress %d: %v", progress.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course progress updated", nil)
}
