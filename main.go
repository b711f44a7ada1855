package main

import (
	"log"

	"github.com/Tej-ashwani/StudyNotion/config"
	"github.com/Tej-ashwani/StudyNotion/database"
	authRoutes "github.com/Tej-ashwani/StudyNotion/routers/authRoutes"
	contactRoutes "github.com/Tej-ashwani/StudyNotion/routers/contactRoutes"
	courseRoutes "github.com/Tej-ashwani/StudyNotion/routers/courseRoutes"
	paymentRoutes "github.com/Tej-ashwani/StudyNotion/routers/paymentRoutes"
	profileRoutes "github.com/Tej-ashwani/StudyNotion/routers/profileRoutes"
	"github.com/Tej-ashwani/StudyNotion/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Your server is up and running ...",
		})
	})

	authRoutes.SetupAuthRoutes(app)
	profileRoutes.SetupProfileRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	contactRoutes.SetupContactRoutes(app)

	utils.StartCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
