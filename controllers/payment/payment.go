package paymentController

import (
	"errors"
	"log"
	"math"

	"github.com/Tej-ashwani/StudyNotion/config"
	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/models"
	"github.com/Tej-ashwani/StudyNotion/utils"
	paymentValidator "github.com/Tej-ashwani/StudyNotion/validators/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrAlreadyEnrolled = errors.New("student is already enrolled")
)

// ComputeOrderAmount validates the course list for the user and returns the
// order total in minor currency units (sum of prices, scaled by 100).
func ComputeOrderAmount(db *gorm.DB, userID uint, courseIDs []uint) (int64, error) {
	var total float64

	for _, courseID := range courseIDs {
		var course models.Course
		if err := db.Where("id = ? AND status = ?", courseID, models.CourseStatusPublished).
			First(&course).Error; err != nil {
			return 0, ErrCourseNotFound
		}

		// A progress record exists iff the user is enrolled
		var progress models.CourseProgress
		if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).
			First(&progress).Error; err == nil {
			return 0, ErrAlreadyEnrolled
		}

		total += course.Price
	}

	// Round, don't truncate: prices like 8.20 sit just below the integer in
	// float form and would otherwise lose a paisa.
	return int64(math.Round(total * 100)), nil
}

// CapturePayment sums the course prices and opens a gateway order for the total
func CapturePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCapturePayment").(*paymentValidator.CapturePaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	amount, err := ComputeOrderAmount(db, userID, reqData.Courses)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student is already enrolled", nil)
	}

	receipt := uuid.NewString()
	order, err := utils.CreateRazorpayOrder(amount, "INR", receipt)
	if err != nil {
		log.Printf("Error creating gateway order: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not initiate order", nil)
	}

	// Ledger row; flipped to VERIFIED by the enrollment transaction
	ledger := models.PaymentOrder{
		OrderID: order.ID,
		UserID:  userID,
		Amount:  amount,
		Receipt: receipt,
		Courses: datatypes.NewJSONSlice(reqData.Courses),
		Status:  models.PaymentStatusCreated,
	}
	if err := db.Create(&ledger).Error; err != nil {
		log.Printf("Error saving payment order: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not initiate order", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created successfully", order)
}

// VerifyPayment checks the gateway signature and, on the first valid call for
// a payment, runs the enrollment fan-out. Replays of an already verified
// payment are acknowledged without enrolling again.
func VerifyPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedVerifyPayment").(*paymentValidator.VerifyPaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The signature is the sole proof of payment; the gateway is not polled.
	if !utils.VerifyRazorpaySignature(
		reqData.RazorpayOrderID,
		reqData.RazorpayPaymentID,
		reqData.RazorpaySignature,
		config.AppConfig.RazorpaySecret,
	) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment verification failed", nil)
	}

	db := database.Database.Db

	// Idempotency: a VERIFIED ledger row for this payment means the fan-out
	// already ran, so a retried webhook must not enroll twice.
	var verified models.PaymentOrder
	if err := db.Where("payment_id = ? AND status = ?",
		reqData.RazorpayPaymentID, models.PaymentStatusVerified).
		First(&verified).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment already verified", nil)
	}

	if err := EnrollStudents(db, reqData.Courses, userID, reqData.RazorpayOrderID, reqData.RazorpayPaymentID); err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		log.Printf("Error enrolling student %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not enroll student", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment verified", nil)
}

// SendPaymentSuccessEmail mails the payment acknowledgement to the payer
func SendPaymentSuccessEmail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPaymentSuccessEmail").(*paymentValidator.PaymentSuccessEmailRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	utils.SendPaymentSuccessEmail(user.Email, user.FirstName,
		float64(reqData.Amount)/100, reqData.OrderID, reqData.PaymentID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment success email sent", nil)
}
