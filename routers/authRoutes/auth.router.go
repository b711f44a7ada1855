package authRoutes

import (
	authController "github.com/Tej-ashwani/StudyNotion/controllers/auth"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	authValidator "github.com/Tej-ashwani/StudyNotion/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/v1/auth")

	authGroup.Post("/sendotp", authValidator.SendOTP(), authController.SendOTP)
	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/changepassword", authValidator.ChangePassword(), middleware.JWTMiddleware, authController.ChangePassword)
	authGroup.Post("/reset-password-token", authValidator.ResetPasswordToken(), authController.ResetPasswordToken)
	authGroup.Post("/reset-password", authValidator.ResetPassword(), authController.ResetPassword)
}
