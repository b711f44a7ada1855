package authController

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/Tej-ashwani/StudyNotion/config"
	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/models"
	"github.com/Tej-ashwani/StudyNotion/utils"
	authValidator "github.com/Tej-ashwani/StudyNotion/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// ResetPasswordToken generates a reset token and mails the reset link
func ResetPasswordToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPasswordToken").(*authValidator.ResetPasswordTokenRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	user, err := lookupUserByEmail(db, reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false,
			fmt.Sprintf("This Email: %s is not registered with us. Enter a valid email.", reqData.Email), nil)
	}

	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		log.Printf("Error generating reset token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Some error occurred while sending the reset password email.", nil)
	}
	token := hex.EncodeToString(buf)

	expires := time.Now().Add(1 * time.Hour)
	if err := db.Model(user).Updates(map[string]interface{}{
		"token":                  token,
		"reset_password_expires": expires,
	}).Error; err != nil {
		log.Printf("Error saving reset token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Some error occurred while sending the reset password email.", nil)
	}

	resetURL := fmt.Sprintf("%s/update-password/%s", config.AppConfig.FrontendURL, token)
	utils.SendResetPasswordEmail(user.Email, resetURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email sent successfully. Please check your email to continue.", nil)
}

// ResetPassword sets a new password against a previously issued reset token
func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("token = ?", reqData.Token).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Token is invalid.", nil)
	}

	if user.ResetPasswordExpires == nil || user.ResetPasswordExpires.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Token has expired. Please regenerate your token.", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Some error occurred while updating the password.", nil)
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"password":               string(hashedPassword),
		"token":                  "",
		"reset_password_expires": nil,
	}).Error; err != nil {
		log.Printf("Error resetting password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Some error occurred while updating the password.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successful.", nil)
}
