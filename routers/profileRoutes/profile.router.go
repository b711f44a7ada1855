package profileRoutes

import (
	profileController "github.com/Tej-ashwani/StudyNotion/controllers/profile"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	profileValidator "github.com/Tej-ashwani/StudyNotion/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/api/v1/profile")

	profileGroup.Put("/updateProfile", profileValidator.UpdateProfile(), middleware.JWTMiddleware, profileController.UpdateProfile)
	profileGroup.Delete("/deleteProfile", middleware.JWTMiddleware, profileController.DeleteAccount)
	profileGroup.Get("/getUserDetails", middleware.JWTMiddleware, profileController.GetUserDetails)
	profileGroup.Get("/getEnrolledCourses", middleware.JWTMiddleware, profileController.GetEnrolledCourses)
	profileGroup.Put("/updateDisplayPicture", middleware.JWTMiddleware, profileValidator.UpdateDisplayPicture(), profileController.UpdateDisplayPicture)
	profileGroup.Get("/instructorDashboard", middleware.JWTMiddleware, middleware.IsInstructor(), profileController.InstructorDashboard)
}
