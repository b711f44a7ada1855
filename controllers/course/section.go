package courseController

import (
	"log"

	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/models"
	courseValidator "github.com/Tej-ashwani/StudyNotion/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadCourseContent fetches a course with its full section tree
func loadCourseContent(db *gorm.DB, courseID uint) (*models.Course, error) {
	var course models.Course
	if err := db.Preload("Sections.SubSections").First(&course, courseID).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateSection adds a section to a course owned by the requesting instructor
func CreateSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateSection").(*courseValidator.CreateSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ?", reqData.CourseID, userID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	section := models.Section{
		SectionName: reqData.SectionName,
		CourseID:    course.ID,
	}
	if err := db.Create(&section).Error; err != nil {
		log.Printf("Error creating section: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to create section. Please try again.", nil)
	}

	updatedCourse, err := loadCourseContent(db, course.ID)
	if err != nil {
		log.Printf("Error reloading course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to create section. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section created successfully", updatedCourse)
}

// UpdateSection renames an existing section
func UpdateSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateSection").(*courseValidator.UpdateSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ?", reqData.CourseID, userID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	var section models.Section
	if err := db.Where("id = ? AND course_id = ?", reqData.SectionID, course.ID).
		First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found", nil)
	}

	if err := db.Model(&section).Update("section_name", reqData.SectionName).Error; err != nil {
		log.Printf("Error updating section %d: %v", section.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to update section. Please try again.", nil)
	}

	updatedCourse, err := loadCourseContent(db, course.ID)
	if err != nil {
		log.Printf("Error reloading course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to update section. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully", updatedCourse)
}

// DeleteSection removes a section and its subsections
func DeleteSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDeleteSection").(*courseValidator.DeleteSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ?", reqData.CourseID, userID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	var section models.Section
	if err := db.Where("id = ? AND course_id = ?", reqData.SectionID, course.ID).
		First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", section.ID).Delete(&models.SubSection{}).Error; err != nil {
			return err
		}
		return tx.Delete(&section).Error
	})
	if err != nil {
		log.Printf("Error deleting section %d: %v", section.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to delete section. Please try again.", nil)
	}

	updatedCourse, err := loadCourseContent(db, course.ID)
	if err != nil {
		log.Printf("Error reloading course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to delete section. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully", updatedCourse)
}
