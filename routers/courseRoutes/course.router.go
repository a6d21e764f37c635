package courseRoutes

import (
	"scms/config"
	courseController "scms/controllers/course"
	"scms/middleware"
	courseValidator "scms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes wires course CRUD and the course roster listing.
func SetupCourseRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := courseController.New(db)

	courseGroup := app.Group("/api/courses")

	// Public course listing
	courseGroup.Get("/", ctrl.GetAllCourses)

	// Admin course management
	courseGroup.Post("/", middleware.Protected(cfg), middleware.RequireAdmin(), courseValidator.CreateCourse(), ctrl.CreateCourse)
	courseGroup.Put("/:id", middleware.Protected(cfg), middleware.RequireAdmin(), courseValidator.UpdateCourse(), ctrl.UpdateCourse)
	courseGroup.Delete("/:id", middleware.Protected(cfg), middleware.RequireAdmin(), courseValidator.CourseID(), ctrl.DeleteCourse)

	// Roster
	courseGroup.Get("/:id/students", middleware.Protected(cfg), middleware.RequireAdmin(), courseValidator.CourseID(), ctrl.GetCourseStudents)
}
