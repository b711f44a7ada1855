package paymentValidator

import (
	"strings"

	"github.com/Tej-ashwani/StudyNotion/middleware"

	"github.com/gofiber/fiber/v2"
)

type CapturePaymentRequest struct {
	Courses []uint `json:"courses"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	Courses           []uint `json:"courses"`
}

type PaymentSuccessEmailRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Amount    int64  `json:"amount"`
}

func CapturePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CapturePaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Courses) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide course IDs", nil)
		}

		c.Locals("validatedCapturePayment", reqData)
		return c.Next()
	}
}

func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyPaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.RazorpayOrderID) == "" ||
			strings.TrimSpace(reqData.RazorpayPaymentID) == "" ||
			strings.TrimSpace(reqData.RazorpaySignature) == "" ||
			len(reqData.Courses) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields", nil)
		}

		c.Locals("validatedVerifyPayment", reqData)
		return c.Next()
	}
}

func PaymentSuccessEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PaymentSuccessEmailRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.OrderID) == "" ||
			strings.TrimSpace(reqData.PaymentID) == "" ||
			reqData.Amount == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide all required details", nil)
		}

		c.Locals("validatedPaymentSuccessEmail", reqData)
		return c.Next()
	}
}
