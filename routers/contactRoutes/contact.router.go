package contactRoutes

import (
	contactController "github.com/Tej-ashwani/StudyNotion/controllers/contact"
	contactValidator "github.com/Tej-ashwani/StudyNotion/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	contactGroup := app.Group("/api/v1/reach")

	contactGroup.Post("/contact", contactValidator.ContactUs(), contactController.ContactUs)
}
