package contactController

import (
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/utils"
	contactValidator "github.com/Tej-ashwani/StudyNotion/validators/contact"

	"github.com/gofiber/fiber/v2"
)

// ContactUs acknowledges a contact form submission by email
func ContactUs(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContactUs").(*contactValidator.ContactUsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	utils.SendContactFormEmail(reqData.Email, reqData.FirstName, reqData.LastName, reqData.Message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email sent successfully", nil)
}
