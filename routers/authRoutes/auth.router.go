package authRoutes

import (
	"scms/config"
	authController "scms/controllers/auth"
	authValidator "scms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := authController.New(db, cfg)

	api := app.Group("/api")
	api.Post("/students/signup", authValidator.Signup(), ctrl.StudentSignup)
	api.Post("/students/login", authValidator.StudentLogin(), ctrl.StudentLogin)
	api.Post("/admin/login", authValidator.AdminLogin(), ctrl.AdminLogin)
}
