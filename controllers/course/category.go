package courseController

import (
	"log"
	"math/rand"

	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/models"
	courseValidator "github.com/Tej-ashwani/StudyNotion/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory adds a new course category (admin only)
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateCategory").(*courseValidator.CreateCategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category := models.Category{
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&category).Error; err != nil {
		log.Printf("Error creating category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category created successfully", category)
}

// ShowAllCategories lists every category
func ShowAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Find(&categories).Error; err != nil {
		log.Printf("Error fetching categories: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully", categories)
}

// CategoryPageDetails returns the catalog page payload: the selected
// category's published courses, a different category for cross-linking, and
// the most popular courses overall.
func CategoryPageDetails(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategoryPage").(*courseValidator.CategoryPageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var selectedCategory models.Category
	if err := db.Preload("Courses", "status = ?", models.CourseStatusPublished).
		Preload("Courses.Ratings").
		First(&selectedCategory, reqData.CategoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
	}

	if len(selectedCategory.Courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No courses found for the selected category.", nil)
	}

	// Pick some other category for the "you might also like" rail
	var otherCategories []models.Category
	if err := db.Where("id <> ?", reqData.CategoryID).Find(&otherCategories).Error; err != nil {
		log.Printf("Error fetching categories: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch category page!", nil)
	}

	var differentCategory *models.Category
	if len(otherCategories) > 0 {
		pick := otherCategories[rand.Intn(len(otherCategories))]
		if err := db.Preload("Courses", "status = ?", models.CourseStatusPublished).
			First(&pick, pick.ID).Error; err == nil {
			differentCategory = &pick
		}
	}

	// Most popular published courses by enrollment count
	var mostSellingCourses []models.Course
	if err := db.
		Model(&models.Course{}).
		Joins("LEFT JOIN course_enrollments ce ON ce.course_id = courses.id").
		Where("courses.status = ?", models.CourseStatusPublished).
		Group("courses.id").
		Order("COUNT(ce.user_id) DESC").
		Limit(10).
		Preload("Instructor").
		Find(&mostSellingCourses).Error; err != nil {
		log.Printf("Error fetching top courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch category page!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category page fetched successfully", fiber.Map{
		"selectedCategory":   selectedCategory,
		"differentCategory":  differentCategory,
		"mostSellingCourses": mostSellingCourses,
	})
}

// AddCourseToCategory moves a course under a category
func AddCourseToCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAddCourseToCategory").(*courseValidator.AddCourseToCategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.First(&category, reqData.CategoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
	}

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if course.CategoryID != nil && *course.CategoryID == category.ID {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course already exists in the category", nil)
	}

	if err := db.Model(&course).Update("category_id", category.ID).Error; err != nil {
		log.Printf("Error adding course to category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add course to category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course added to category successfully", nil)
}
