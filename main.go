package main

import (
	"log"

	"scms/apperrors"
	"scms/config"
	"scms/database"
	"scms/routers/authRoutes"
	"scms/routers/courseRoutes"
	"scms/routers/enrollmentRoutes"
	"scms/routers/studentRoutes"
	"scms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	log.Printf("Starting %s v%s in %s mode", config.AppName, config.AppVersion, cfg.Mode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      config.AppName,
		ErrorHandler: apperrors.Handler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"mode":    cfg.Mode,
			"version": config.AppVersion,
		})
	})

	authRoutes.SetupAuthRoutes(app, db, cfg)
	courseRoutes.SetupCourseRoutes(app, db, cfg)
	studentRoutes.SetupStudentRoutes(app, db, cfg)
	enrollmentRoutes.SetupEnrollmentRoutes(app, db, cfg)

	utils.InitializeCleanupScheduler(db)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
