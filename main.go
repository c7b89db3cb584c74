package main

import (
	"log"

	"pronocoach/config"
	"pronocoach/database"
	"pronocoach/middleware"
	adminRoutes "pronocoach/routers/adminRoutes"
	authRoutes "pronocoach/routers/authRoutes"
	courseRoutes "pronocoach/routers/courseRoutes"
	profileRoutes "pronocoach/routers/profileRoutes"
	quizRoutes "pronocoach/routers/quizRoutes"
	readerRoutes "pronocoach/routers/readerRoutes"
	translatorRoutes "pronocoach/routers/translatorRoutes"
	"pronocoach/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	middleware.InitSessionStore()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // audio uploads for the speech routes
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5000,http://127.0.0.1:5000",
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the frontend and the handout PDFs
	app.Static("/", "./www")
	app.Static("/books", "./www/books")

	authRoutes.SetupAuthRoutes(app)
	profileRoutes.SetupProfileRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	readerRoutes.SetupReaderRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	translatorRoutes.SetupTranslatorRoutes(app)

	utils.StartCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
