package courseValidator

import (
	"strings"

	"github.com/Tej-ashwani/StudyNotion/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateSubSectionRequest struct {
	SectionID   uint   `json:"sectionId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateSubSectionRequest struct {
	SectionID    uint    `json:"sectionId"`
	SubSectionID uint    `json:"subSectionId"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
}

type DeleteSubSectionRequest struct {
	SubSectionID uint `json:"subSectionId"`
	SectionID    uint `json:"sectionId"`
}

func CreateSubSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSubSectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if _, err := c.FormFile("videoFile"); err != nil {
			errors["videoFile"] = "Video file is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateSubSection", reqData)
		return c.Next()
	}
}

func UpdateSubSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSubSectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section ID is required!"
		}
		if reqData.SubSectionID == 0 {
			errors["subSectionId"] = "Sub-section ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateSubSection", reqData)
		return c.Next()
	}
}

func DeleteSubSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DeleteSubSectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SubSectionID == 0 {
			errors["subSectionId"] = "Sub-section ID is required!"
		}
		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDeleteSubSection", reqData)
		return c.Next()
	}
}
