package courseController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tej-ashwani/StudyNotion/config"
	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/models"
	courseValidator "github.com/Tej-ashwani/StudyNotion/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "unit-test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database.Db = db
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, accountType string) models.User {
	t.Helper()

	user := models.User{
		FirstName:   "Test",
		LastName:    "User",
		Email:       email,
		Password:    "hashed",
		AccountType: accountType,
		Profile:     models.Profile{},
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedPublishedCourse(t *testing.T, db *gorm.DB, instructorID uint, name string) models.Course {
	t.Helper()

	course := models.Course{
		CourseName:   name,
		Price:        499.0,
		Status:       models.CourseStatusPublished,
		InstructorID: instructorID,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func enrollUser(t *testing.T, db *gorm.DB, user models.User, course models.Course) {
	t.Helper()

	require.NoError(t, db.Model(&course).Association("Students").Append(&user))
	progress := models.CourseProgress{
		UserID:          user.ID,
		CourseID:        course.ID,
		CompletedVideos: datatypes.NewJSONSlice([]uint{}),
	}
	require.NoError(t, db.Create(&progress).Error)
}

func newRatingApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Post("/createRating", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}, courseValidator.CreateRating(), CreateRating)
	return app
}

func postRating(t *testing.T, app *fiber.App, body map[string]interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/createRating", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateRatingNotEnrolled(t *testing.T) {
	db := setupTestDb(t)
	instructor := seedUser(t, db, "instructor@example.com", models.RoleInstructor)
	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	course := seedPublishedCourse(t, db, instructor.ID, "Go Basics")

	app := newRatingApp(student.ID)
	resp := postRating(t, app, map[string]interface{}{
		"courseId": course.ID,
		"rating":   4.5,
		"review":   "Solid introduction",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateRating(t *testing.T) {
	db := setupTestDb(t)
	instructor := seedUser(t, db, "instructor@example.com", models.RoleInstructor)
	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	course := seedPublishedCourse(t, db, instructor.ID, "Go Basics")
	enrollUser(t, db, student, course)

	app := newRatingApp(student.ID)
	resp := postRating(t, app, map[string]interface{}{
		"courseId": course.ID,
		"rating":   4.5,
		"review":   "Solid introduction",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var saved models.RatingAndReview
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&saved).Error)
	assert.Equal(t, 4.5, saved.Rating)
}

func TestCreateRatingDuplicate(t *testing.T) {
	db := setupTestDb(t)
	instructor := seedUser(t, db, "instructor@example.com", models.RoleInstructor)
	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	course := seedPublishedCourse(t, db, instructor.ID, "Go Basics")
	enrollUser(t, db, student, course)

	app := newRatingApp(student.ID)
	body := map[string]interface{}{
		"courseId": course.ID,
		"rating":   4.5,
		"review":   "Solid introduction",
	}

	first := postRating(t, app, body)
	assert.Equal(t, fiber.StatusOK, first.StatusCode)

	second := postRating(t, app, body)
	assert.Equal(t, fiber.StatusForbidden, second.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.RatingAndReview{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRatingUniqueIndexRejectsSecondInsert(t *testing.T) {
	db := setupTestDb(t)
	instructor := seedUser(t, db, "instructor@example.com", models.RoleInstructor)
	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	course := seedPublishedCourse(t, db, instructor.ID, "Go Basics")
	enrollUser(t, db, student, course)

	first := models.RatingAndReview{
		UserID:   student.ID,
		CourseID: course.ID,
		Rating:   4,
		Review:   "Good course",
	}
	require.NoError(t, db.Create(&first).Error)

	// A racing submission that slips past the handler check must be stopped
	// by the storage layer itself
	second := models.RatingAndReview{
		UserID:   student.ID,
		CourseID: course.ID,
		Rating:   2,
		Review:   "Changed my mind",
	}
	assert.Error(t, db.Create(&second).Error)

	var count int64
	require.NoError(t, db.Model(&models.RatingAndReview{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateRatingRejectsOutOfRange(t *testing.T) {
	db := setupTestDb(t)
	instructor := seedUser(t, db, "instructor@example.com", models.RoleInstructor)
	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	course := seedPublishedCourse(t, db, instructor.ID, "Go Basics")
	enrollUser(t, db, student, course)

	app := newRatingApp(student.ID)
	resp := postRating(t, app, map[string]interface{}{
		"courseId": course.ID,
		"rating":   6.0,
		"review":   "Too good",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
