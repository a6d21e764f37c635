package enrollmentRoutes

import (
	"scms/config"
	enrollmentController "scms/controllers/enrollment"
	"scms/middleware"
	enrollmentValidator "scms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupEnrollmentRoutes wires enrollment management. Admin only.
func SetupEnrollmentRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := enrollmentController.New(db)

	enrollmentGroup := app.Group("/api/enrollments")
	enrollmentGroup.Post("/", middleware.Protected(cfg), middleware.RequireAdmin(), enrollmentValidator.CreateEnrollment(), ctrl.EnrollStudent)
	enrollmentGroup.Delete("/:student_id/:course_id", middleware.Protected(cfg), middleware.RequireAdmin(), enrollmentValidator.EnrollmentPair(), ctrl.UnenrollStudent)
}
