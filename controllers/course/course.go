package courseController

import (
	"log"
	"strings"

	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/models"
	"github.com/Tej-ashwani/StudyNotion/utils"
	courseValidator "github.com/Tej-ashwani/StudyNotion/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateCourse registers a new course owned by the requesting instructor
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.First(&category, reqData.CategoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
	}

	status := reqData.Status
	if status == "" {
		status = models.CourseStatusDraft
	}

	course := models.Course{
		CourseName:        reqData.CourseName,
		CourseDescription: reqData.CourseDescription,
		WhatYouWillLearn:  reqData.WhatYouWillLearn,
		Price:             reqData.Price,
		Tag:               datatypes.NewJSONSlice(reqData.Tag),
		Instructions:      datatypes.NewJSONSlice(reqData.Instructions),
		Status:            status,
		InstructorID:      userID,
		CategoryID:        &category.ID,
	}

	// Thumbnail upload is optional at creation time
	if fileHeader, err := c.FormFile("thumbnailImage"); err == nil {
		data, err := readMultipartFile(fileHeader)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read thumbnail file!", nil)
		}
		uploaded, err := utils.UploadMedia(fileHeader.Filename, data)
		if err != nil {
			log.Printf("Error uploading thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload thumbnail!", nil)
		}
		course.Thumbnail = uploaded.SecureURL
	}

	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully", course)
}

// GetAllCourses lists all published courses
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("status = ?", models.CourseStatusPublished).
		Preload("Instructor").
		Preload("Ratings").
		Preload("Students").
		Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully", courses)
}

// GetCourseDetails returns the public view of one course
func GetCourseDetails(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseID").(*courseValidator.CourseIDRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.
		Preload("Instructor.Profile").
		Preload("Category").
		Preload("Ratings.User").
		Preload("Sections.SubSections").
		Preload("Students").
		First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully", course)
}

// GetFullCourseDetails returns a course together with the caller's progress
func GetFullCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourseID").(*courseValidator.CourseIDRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.
		Preload("Instructor.Profile").
		Preload("Category").
		Preload("Ratings").
		Preload("Sections.SubSections").
		First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	completedVideos := []uint{}
	var progress models.CourseProgress
	if err := db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).
		First(&progress).Error; err == nil {
		completedVideos = progress.CompletedVideos
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully", fiber.Map{
		"courseDetails":   course,
		"completedVideos": completedVideos,
	})
}

// EditCourse updates fields of a course owned by the requesting instructor
func EditCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEditCourse").(*courseValidator.EditCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ?", reqData.CourseID, userID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if reqData.CourseName != nil {
		course.CourseName = *reqData.CourseName
	}
	if reqData.CourseDescription != nil {
		course.CourseDescription = *reqData.CourseDescription
	}
	if reqData.WhatYouWillLearn != nil {
		course.WhatYouWillLearn = *reqData.WhatYouWillLearn
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Status != nil {
		course.Status = *reqData.Status
	}
	if reqData.Tag != nil {
		course.Tag = datatypes.NewJSONSlice(reqData.Tag)
	}
	if reqData.Instructions != nil {
		course.Instructions = datatypes.NewJSONSlice(reqData.Instructions)
	}

	if fileHeader, err := c.FormFile("thumbnailImage"); err == nil {
		data, err := readMultipartFile(fileHeader)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read thumbnail file!", nil)
		}
		uploaded, err := utils.UploadMedia(fileHeader.Filename, data)
		if err != nil {
			log.Printf("Error uploading thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload thumbnail!", nil)
		}
		course.Thumbnail = uploaded.SecureURL
	}

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully", course)
}

// GetInstructorCourses lists the courses owned by the requesting instructor
func GetInstructorCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.
		Where("instructor_id = ?", userID).
		Preload("Sections.SubSections").
		Preload("Students").
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		log.Printf("Error fetching instructor courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor courses fetched successfully", courses)
}

// DeleteCourse removes a course with its content, enrollments and progress
// records in one transaction.
func DeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourseID").(*courseValidator.CourseIDRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ?", reqData.CourseID, userID).
		Preload("Sections").
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&course).Association("Students").Clear(); err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.CourseProgress{}).Error; err != nil {
			return err
		}
		for _, section := range course.Sections {
			if err := tx.Where("section_id = ?", section.ID).Delete(&models.SubSection{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Section{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.RatingAndReview{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		log.Printf("Error deleting course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}

// SearchCourse matches published courses by name, description or tag
func SearchCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSearchCourse").(*courseValidator.SearchCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	pattern := "%" + strings.ToLower(reqData.SearchQuery) + "%"

	// LOWER + LIKE instead of ILIKE so the query runs on both the production
	// driver and the sqlite test handle; tag is a JSON array column, matched
	// as text.
	var courses []models.Course
	if err := database.Database.Db.
		Where("status = ?", models.CourseStatusPublished).
		Where("LOWER(course_name) LIKE ? OR LOWER(course_description) LIKE ? OR LOWER(CAST(tag AS TEXT)) LIKE ?",
			pattern, pattern, pattern).
		Preload("Instructor").
		Preload("Ratings").
		Find(&courses).Error; err != nil {
		log.Printf("Error searching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully", courses)
}
