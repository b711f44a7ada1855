package authController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tej-ashwani/StudyNotion/config"
	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/models"
	authValidator "github.com/Tej-ashwani/StudyNotion/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "unit-test-secret",
		SaltRound: bcrypt.MinCost,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database.Db = db
	return db
}

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Post("/signup", authValidator.Signup(), Signup)
	app.Post("/login", authValidator.Login(), Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func seedOTP(t *testing.T, db *gorm.DB, email, code string, expiresAt time.Time) {
	t.Helper()

	require.NoError(t, db.Create(&models.OTP{
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
	}).Error)
}

func signupBody(otp string) map[string]interface{} {
	return map[string]interface{}{
		"firstName":       "Asha",
		"lastName":        "Verma",
		"email":           "asha@example.com",
		"password":        "s3cret-pass",
		"confirmPassword": "s3cret-pass",
		"accountType":     models.RoleStudent,
		"contactNumber":   "9876543210",
		"otp":             otp,
	}
}

func TestSignup(t *testing.T) {
	db := setupTestDb(t)
	seedOTP(t, db, "asha@example.com", "123456", time.Now().Add(10*time.Minute))

	app := newAuthApp()
	resp := postJSON(t, app, "/signup", signupBody("123456"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Preload("Profile").Where("email = ?", "asha@example.com").First(&user).Error)
	assert.Equal(t, models.RoleStudent, user.AccountType)
	assert.Equal(t, "9876543210", user.Profile.ContactNumber)
	assert.Contains(t, user.Image, "dicebear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))
}

func TestSignupWrongOTP(t *testing.T) {
	db := setupTestDb(t)
	seedOTP(t, db, "asha@example.com", "123456", time.Now().Add(10*time.Minute))

	app := newAuthApp()
	resp := postJSON(t, app, "/signup", signupBody("000000"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSignupExpiredOTP(t *testing.T) {
	db := setupTestDb(t)
	seedOTP(t, db, "asha@example.com", "123456", time.Now().Add(-time.Minute))

	app := newAuthApp()
	resp := postJSON(t, app, "/signup", signupBody("123456"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupTestDb(t)
	seedOTP(t, db, "asha@example.com", "123456", time.Now().Add(10*time.Minute))

	app := newAuthApp()
	first := postJSON(t, app, "/signup", signupBody("123456"))
	assert.Equal(t, fiber.StatusOK, first.StatusCode)

	second := postJSON(t, app, "/signup", signupBody("123456"))
	assert.Equal(t, fiber.StatusBadRequest, second.StatusCode)
}

func TestLogin(t *testing.T) {
	db := setupTestDb(t)
	seedOTP(t, db, "asha@example.com", "123456", time.Now().Add(10*time.Minute))

	app := newAuthApp()
	require.Equal(t, fiber.StatusOK, postJSON(t, app, "/signup", signupBody("123456")).StatusCode)

	resp := postJSON(t, app, "/login", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "s3cret-pass",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var decoded struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.True(t, decoded.Success)
	assert.NotEmpty(t, decoded.Data.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDb(t)
	seedOTP(t, db, "asha@example.com", "123456", time.Now().Add(10*time.Minute))

	app := newAuthApp()
	require.Equal(t, fiber.StatusOK, postJSON(t, app, "/signup", signupBody("123456")).StatusCode)

	resp := postJSON(t, app, "/login", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
