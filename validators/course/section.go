package courseValidator

import (
	"strings"

	"github.com/Tej-ashwani/StudyNotion/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateSectionRequest struct {
	SectionName string `json:"sectionName"`
	CourseID    uint   `json:"courseId"`
}

type UpdateSectionRequest struct {
	SectionName string `json:"sectionName"`
	SectionID   uint   `json:"sectionId"`
	CourseID    uint   `json:"courseId"`
}

type DeleteSectionRequest struct {
	SectionID uint `json:"sectionId"`
	CourseID  uint `json:"courseId"`
}

func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.SectionName) == "" {
			errors["sectionName"] = "Section name is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateSection", reqData)
		return c.Next()
	}
}

func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.SectionName) == "" {
			errors["sectionName"] = "Section name is required!"
		}
		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section ID is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateSection", reqData)
		return c.Next()
	}
}

func DeleteSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DeleteSectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section ID is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDeleteSection", reqData)
		return c.Next()
	}
}
