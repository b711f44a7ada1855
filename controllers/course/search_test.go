package courseController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tej-ashwani/StudyNotion/models"
	courseValidator "github.com/Tej-ashwani/StudyNotion/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newSearchApp() *fiber.App {
	app := fiber.New()
	app.Post("/searchCourse", courseValidator.SearchCourse(), SearchCourse)
	return app
}

func searchCourses(t *testing.T, app *fiber.App, query string) []models.Course {
	t.Helper()

	payload, err := json.Marshal(map[string]string{"searchQuery": query})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/searchCourse", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var decoded struct {
		Data []models.Course `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded.Data
}

func TestSearchCourse(t *testing.T) {
	db := setupTestDb(t)
	instructor := seedUser(t, db, "instructor@example.com", models.RoleInstructor)

	published := models.Course{
		CourseName:        "Go Basics",
		CourseDescription: "Learn the fundamentals",
		Price:             499.0,
		Status:            models.CourseStatusPublished,
		InstructorID:      instructor.ID,
		Tag:               datatypes.NewJSONSlice([]string{"golang", "backend"}),
	}
	require.NoError(t, db.Create(&published).Error)

	draft := models.Course{
		CourseName:   "Go Internals",
		Price:        999.0,
		Status:       models.CourseStatusDraft,
		InstructorID: instructor.ID,
	}
	require.NoError(t, db.Create(&draft).Error)

	app := newSearchApp()

	// Case-insensitive name match; drafts never surface
	results := searchCourses(t, app, "go")
	require.Len(t, results, 1)
	assert.Equal(t, "Go Basics", results[0].CourseName)

	// Description match
	results = searchCourses(t, app, "FUNDAMENTALS")
	require.Len(t, results, 1)
	assert.Equal(t, "Go Basics", results[0].CourseName)

	// Tag match
	results = searchCourses(t, app, "backend")
	require.Len(t, results, 1)
	assert.Equal(t, "Go Basics", results[0].CourseName)

	// No match
	assert.Empty(t, searchCourses(t, app, "cooking"))
}
