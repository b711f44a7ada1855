package courseRoutes

import (
	courseController "github.com/Tej-ashwani/StudyNotion/controllers/course"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	courseValidator "github.com/Tej-ashwani/StudyNotion/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/v1/course")

	// Course authoring, instructors only
	courseGroup.Post("/createCourse", middleware.JWTMiddleware, middleware.IsInstructor(), courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Post("/editCourse", middleware.JWTMiddleware, middleware.IsInstructor(), courseValidator.EditCourse(), courseController.EditCourse)
	courseGroup.Get("/getInstructorCourses", middleware.JWTMiddleware, middleware.IsInstructor(), courseController.GetInstructorCourses)
	courseGroup.Delete("/deleteCourse", middleware.JWTMiddleware, middleware.IsInstructor(), courseValidator.CourseID(), courseController.DeleteCourse)

	// Section and subsection authoring
	courseGroup.Post("/addSection", middleware.JWTMiddleware, middleware.IsInstructor(), courseValidator.CreateSection(), courseController.CreateSection)
	courseGroup.Post("/updateSection", middleware.JWTMiddleware, middleware.IsInstructor(), courseValidator.UpdateSection(), courseController.UpdateSection)
	courseGroup.Post("/deleteSection", middleware.JWTMiddleware, middleware.IsInstructor(), courseValidator.DeleteSection(), courseController.DeleteSection)
	courseGroup.Post("/addSubSection", middleware.JWTMiddleware, middleware.IsInstructor(), courseValidator.CreateSubSection(), courseController.CreateSubSection)
	courseGroup.Post("/updateSubSection", middleware.JWTMiddleware, middleware.IsInstructor(), courseValidator.UpdateSubSection(), courseController.UpdateSubSection)
	courseGroup.Post("/deleteSubSection", middleware.JWTMiddleware, middleware.IsInstructor(), courseValidator.DeleteSubSection(), courseController.DeleteSubSection)

	// Catalog, open to everyone
	courseGroup.Get("/getAllCourses", courseController.GetAllCourses)
	courseGroup.Post("/getCourseDetails", courseValidator.CourseID(), courseController.GetCourseDetails)
	courseGroup.Post("/getFullCourseDetails", middleware.JWTMiddleware, courseValidator.CourseID(), courseController.GetFullCourseDetails)
	courseGroup.Post("/searchCourse", courseValidator.SearchCourse(), courseController.SearchCourse)

	// Categories, admin managed
	courseGroup.Post("/createCategory", middleware.JWTMiddleware, middleware.IsAdmin(), courseValidator.CreateCategory(), courseController.CreateCategory)
	courseGroup.Get("/showAllCategories", courseController.ShowAllCategories)
	courseGroup.Post("/getCategoryPageDetails", courseValidator.CategoryPageDetails(), courseController.CategoryPageDetails)
	courseGroup.Post("/addCourseToCategory", middleware.JWTMiddleware, middleware.IsInstructor(), courseValidator.AddCourseToCategory(), courseController.AddCourseToCategory)

	// Ratings and progress, students only
	courseGroup.Post("/createRating", middleware.JWTMiddleware, middleware.IsStudent(), courseValidator.CreateRating(), courseController.CreateRating)
	courseGroup.Post("/getAverageRating", courseValidator.CourseID(), courseController.GetAverageRating)
	courseGroup.Get("/getReviews", courseController.GetAllRating)
	courseGroup.Post("/updateCourseProgress", middleware.JWTMiddleware, middleware.IsStudent(), courseValidator.UpdateCourseProgress(), courseController.UpdateCourseProgress)
}
