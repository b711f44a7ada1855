package courseValidator

import (
	"strings"

	"github.com/Tej-ashwani/StudyNotion/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryPageRequest struct {
	CategoryID uint `json:"categoryId"`
}

type AddCourseToCategoryRequest struct {
	CourseID   uint `json:"courseId"`
	CategoryID uint `json:"categoryId"`
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCategoryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"name": "Category name is required!",
			})
		}

		c.Locals("validatedCreateCategory", reqData)
		return c.Next()
	}
}

func CategoryPageDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CategoryPageRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CategoryID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"categoryId": "Category ID is required!",
			})
		}

		c.Locals("validatedCategoryPage", reqData)
		return c.Next()
	}
}

func AddCourseToCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddCourseToCategoryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.CategoryID == 0 {
			errors["categoryId"] = "Category ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAddCourseToCategory", reqData)
		return c.Next()
	}
}
