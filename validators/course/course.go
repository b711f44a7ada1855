package courseValidator

import (
	"strings"

	"github.com/Tej-ashwani/StudyNotion/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	CourseName        string   `json:"courseName"`
	CourseDescription string   `json:"courseDescription"`
	WhatYouWillLearn  string   `json:"whatYouWillLearn"`
	Price             float64  `json:"price"`
	Tag               []string `json:"tag"`
	Instructions      []string `json:"instructions"`
	CategoryID        uint     `json:"categoryId"`
	Status            string   `json:"status"`
}

type EditCourseRequest struct {
	CourseID          uint     `json:"courseId"`
	CourseName        *string  `json:"courseName"`
	CourseDescription *string  `json:"courseDescription"`
	WhatYouWillLearn  *string  `json:"whatYouWillLearn"`
	Price             *float64 `json:"price"`
	Tag               []string `json:"tag"`
	Instructions      []string `json:"instructions"`
	Status            *string  `json:"status"`
}

type CourseIDRequest struct {
	CourseID uint `json:"courseId"`
}

type SearchCourseRequest struct {
	SearchQuery string `json:"searchQuery"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseName) == "" {
			errors["courseName"] = "Course name is required!"
		}
		if strings.TrimSpace(reqData.CourseDescription) == "" {
			errors["courseDescription"] = "Course description is required!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.CategoryID == 0 {
			errors["categoryId"] = "Category is required!"
		}
		if reqData.Status != "" && reqData.Status != "Draft" && reqData.Status != "Published" {
			errors["status"] = "Status must be Draft or Published!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCourse", reqData)
		return c.Next()
	}
}

func EditCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EditCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.Status != nil && *reqData.Status != "Draft" && *reqData.Status != "Published" {
			errors["status"] = "Status must be Draft or Published!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEditCourse", reqData)
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseIDRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course ID is required!",
			})
		}

		c.Locals("validatedCourseID", reqData)
		return c.Next()
	}
}

func SearchCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SearchCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.SearchQuery) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"searchQuery": "Search query is required!",
			})
		}

		c.Locals("validatedSearchCourse", reqData)
		return c.Next()
	}
}
