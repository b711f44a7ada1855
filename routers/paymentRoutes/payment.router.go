package paymentRoutes

import (
	paymentController "github.com/Tej-ashwani/StudyNotion/controllers/payment"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	paymentValidator "github.com/Tej-ashwani/StudyNotion/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/v1/payment")

	paymentGroup.Post("/capturePayment", middleware.JWTMiddleware, middleware.IsStudent(), paymentValidator.CapturePayment(), paymentController.CapturePayment)
	paymentGroup.Post("/verifyPayment", middleware.JWTMiddleware, middleware.IsStudent(), paymentValidator.VerifyPayment(), paymentController.VerifyPayment)
	paymentGroup.Post("/sendPaymentSuccessEmail", middleware.JWTMiddleware, middleware.IsStudent(), paymentValidator.PaymentSuccessEmail(), paymentController.SendPaymentSuccessEmail)
}
