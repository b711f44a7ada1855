package authController

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/Tej-ashwani/StudyNotion/config"
	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/models"
	"github.com/Tej-ashwani/StudyNotion/utils"
	authValidator "github.com/Tej-ashwani/StudyNotion/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SendOTP generates and mails a signup OTP for a not-yet-registered email
func SendOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOTP").(*authValidator.SendOTPRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Already registered emails don't get signup OTPs
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User is already registered", nil)
	}

	otp := utils.GenerateOTP()

	// Regenerate on the off chance the code is already live for someone else
	for {
		var existing models.OTP
		if err := db.Where("code = ? AND expires_at > ?", otp, time.Now()).First(&existing).Error; err != nil {
			break
		}
		otp = utils.GenerateOTP()
	}

	record := models.OTP{
		Email:     reqData.Email,
		Code:      otp,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("Error saving OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP!", nil)
	}

	utils.SendOTPEmail(reqData.Email, otp)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully", nil)
}

// Signup registers a new user once the emailed OTP checks out
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if the user already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already exists. Please sign in to continue.", nil)
	}

	// Most recent OTP for the email must match
	var recentOTP models.OTP
	if err := db.Where("email = ?", reqData.Email).Order("created_at desc").First(&recentOTP).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "OTP not found", nil)
	}
	if recentOTP.Code != reqData.OTP || recentOTP.ExpiresAt.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid OTP", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "User cannot be registered. Please try again.", nil)
	}

	newUser := models.User{
		FirstName:   reqData.FirstName,
		LastName:    reqData.LastName,
		Email:       reqData.Email,
		Password:    string(hashedPassword),
		AccountType: reqData.AccountType,
		Image:       avatarURL(reqData.FirstName, reqData.LastName),
		Profile: models.Profile{
			ContactNumber: reqData.ContactNumber,
		},
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "User cannot be registered. Please try again.", nil)
	}

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User registered successfully", newUser)
}

// avatarURL builds the default initials avatar for a new account
func avatarURL(firstName, lastName string) string {
	seed := url.QueryEscape(firstName + " " + lastName)
	return fmt.Sprintf("https://api.dicebear.com/6.x/initials/svg?seed=%s", seed)
}

// Login checks credentials and issues the session token
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Preload("Profile").Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User is not registered. Please sign up to continue.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Password is incorrect", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.AccountType)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failure. Please try again", nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(3 * 24 * time.Hour),
		HTTPOnly: true,
	})

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// ChangePassword updates the password of the authenticated user
func ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*authValidator.ChangePasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.OldPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "The old password is incorrect", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error occurred while updating password", nil)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Printf("Error updating password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error occurred while updating password", nil)
	}

	utils.SendPasswordUpdatedEmail(user.Email, user.FirstName+" "+user.LastName)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully", nil)
}

// lookupUserByEmail is shared by the reset-password flow
func lookupUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
