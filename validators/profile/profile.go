package profileValidator

import (
	"strings"

	"github.com/Tej-ashwani/StudyNotion/middleware"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"dateOfBirth"`
	About         string `json:"about"`
	ContactNumber string `json:"contactNumber"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ContactNumber) == "" {
			errors["contactNumber"] = "Contact number is required!"
		}
		if strings.TrimSpace(reqData.Gender) == "" {
			errors["gender"] = "Gender is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateProfile", reqData)
		return c.Next()
	}
}

func UpdateDisplayPicture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := c.FormFile("displayPicture"); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"displayPicture": "Display picture file is required!",
			})
		}
		return c.Next()
	}
}
