package studentRoutes

import (
	"scms/config"
	studentController "scms/controllers/student"
	"scms/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupStudentRoutes wires student listings. The per-student course listing
// is reachable by the student themselves or any admin.
func SetupStudentRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := studentController.New(db)

	studentGroup := app.Group("/api/students")
	studentGroup.Get("/", middleware.Protected(cfg), middleware.RequireAdmin(), ctrl.GetAllStudents)
	studentGroup.Get("/:id/courses", middleware.Protected(cfg), middleware.RequireSelfOrAdmin("id"), ctrl.GetStudentCourses)
}
