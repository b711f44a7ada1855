package courseValidator

import (
	"strings"

	"github.com/Tej-ashwani/StudyNotion/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateRatingRequest struct {
	CourseID uint    `json:"courseId"`
	Rating   float64 `json:"rating"`
	Review   string  `json:"review"`
}

func CreateRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRatingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}
		if strings.TrimSpace(reqData.Review) == "" {
			errors["review"] = "Review is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateRating", reqData)
		return c.Next()
	}
}
