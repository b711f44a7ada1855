package courseValidator

import (
	"github.com/Tej-ashwani/StudyNotion/middleware"

	"github.com/gofiber/fiber/v2"
)

type UpdateProgressRequest struct {
	CourseID     uint `json:"courseId"`
	SubSectionID uint `json:"subsectionId"`
}

func UpdateCourseProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.SubSectionID == 0 {
			errors["subsectionId"] = "Subsection ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateProgress", reqData)
		return c.Next()
	}
}
