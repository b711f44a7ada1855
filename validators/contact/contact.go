package contactValidator

import (
	"strings"

	"github.com/Tej-ashwani/StudyNotion/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type ContactUsRequest struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	Message     string `json:"message"`
	PhoneNo     string `json:"phoneNo"`
	CountryCode string `json:"countrycode"`
}

func ContactUs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactUsRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if err := validate.Var(reqData.Email, "email"); err != nil {
			errors["email"] = "Email is not valid!"
		}
		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["firstname"] = "First name is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContactUs", reqData)
		return c.Next()
	}
}
