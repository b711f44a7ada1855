package profileController

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tej-ashwani/StudyNotion/config"
	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/models"

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

func seedEnrolledStudent(t *testing.T, db *gorm.DB) (models.User, models.Course) {
	t.Helper()

	instructor := models.User{
		FirstName:   "Test",
		LastName:    "Instructor",
		Email:       "instructor@example.com",
		Password:    "hashed",
		AccountType: models.RoleInstructor,
		Profile:     models.Profile{},
	}
	require.NoError(t, db.Create(&instructor).Error)

	course := models.Course{
		CourseName:   "Go Basics",
		Price:        499.0,
		Status:       models.CourseStatusPublished,
		InstructorID: instructor.ID,
	}
	require.NoError(t, db.Create(&course).Error)

	student := models.User{
		FirstName:   "Test",
		LastName:    "Student",
		Email:       "student@example.com",
		Password:    "hashed",
		AccountType: models.RoleStudent,
		Profile:     models.Profile{About: "learner"},
	}
	require.NoError(t, db.Create(&student).Error)

	require.NoError(t, db.Model(&course).Association("Students").Append(&student))
	progress := models.CourseProgress{
		UserID:          student.ID,
		CourseID:        course.ID,
		CompletedVideos: datatypes.NewJSONSlice([]uint{}),
	}
	require.NoError(t, db.Create(&progress).Error)

	return student, course
}

func TestDeleteAccountCascades(t *testing.T) {
	db := setupTestDb(t)
	student, course := seedEnrolledStudent(t, db)

	review := models.RatingAndReview{
		UserID:   student.ID,
		CourseID: course.ID,
		Rating:   4,
		Review:   "Good course",
	}
	require.NoError(t, db.Create(&review).Error)

	app := fiber.New()
	app.Delete("/deleteProfile", func(c *fiber.Ctx) error {
		c.Locals("userId", student.ID)
		return c.Next()
	}, DeleteAccount)

	req := httptest.NewRequest(http.MethodDelete, "/deleteProfile", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var users int64
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", student.ID).Count(&users).Error)
	assert.Zero(t, users)

	var profiles int64
	require.NoError(t, db.Model(&models.Profile{}).
		Where("id = ?", student.ProfileID).Count(&profiles).Error)
	assert.Zero(t, profiles)

	var enrollments int64
	require.NoError(t, db.Table("course_enrollments").
		Where("user_id = ?", student.ID).Count(&enrollments).Error)
	assert.Zero(t, enrollments)

	var progress int64
	require.NoError(t, db.Model(&models.CourseProgress{}).
		Where("user_id = ?", student.ID).Count(&progress).Error)
	assert.Zero(t, progress)

	var reviews int64
	require.NoError(t, db.Model(&models.RatingAndReview{}).
		Where("user_id = ?", student.ID).Count(&reviews).Error)
	assert.Zero(t, reviews)

	// The course itself survives the account deletion
	var courses int64
	require.NoError(t, db.Model(&models.Course{}).
		Where("id = ?", course.ID).Count(&courses).Error)
	assert.Equal(t, int64(1), courses)
}

func TestGetEnrolledCoursesProgress(t *testing.T) {
	db := setupTestDb(t)
	student, course := seedEnrolledStudent(t, db)

	section := models.Section{CourseID: course.ID, SectionName: "Intro"}
	require.NoError(t, db.Create(&section).Error)

	subs := []models.SubSection{
		{SectionID: section.ID, Title: "Welcome", TimeDuration: "60"},
		{SectionID: section.ID, Title: "Setup", TimeDuration: "120"},
	}
	for i := range subs {
		require.NoError(t, db.Create(&subs[i]).Error)
	}

	require.NoError(t, db.Model(&models.CourseProgress{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Update("completed_videos", datatypes.NewJSONSlice([]uint{subs[0].ID})).Error)

	app := fiber.New()
	app.Get("/getEnrolledCourses", func(c *fiber.Ctx) error {
		c.Locals("userId", student.ID)
		return c.Next()
	}, GetEnrolledCourses)

	req := httptest.NewRequest(http.MethodGet, "/getEnrolledCourses", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestConvertSecondsToDuration(t *testing.T) {
	assert.Equal(t, "45s", convertSecondsToDuration(45))
	assert.Equal(t, "2m 5s", convertSecondsToDuration(125))
	assert.Equal(t, "1h 1m", convertSecondsToDuration(3660))
	assert.Equal(t, "0s", convertSecondsToDuration(0))
}
