package studentController

import (
	"strconv"
	"time"

	"scms/apperrors"
	"scms/middleware"
	"scms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller handles student listings.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// GetAllStudents lists every student, newest first. Admin only.
func (ctrl *Controller) GetAllStudents(c *fiber.Ctx) error {
	var students []models.Student
	if err := ctrl.db.Order("created_at DESC").Find(&students).Error; err != nil {
		return apperrors.Store("Failed to fetch students", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully", fiber.Map{
		"students": students,
	})
}

type enrolledCourse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EnrolledAt  time.Time `json:"enrolled_at"`
}

// GetStudentCourses lists the courses a student is enrolled in, most recent
// enrollment first. Route access is gated to self-or-admin.
func (ctrl *Controller) GetStudentCourses(c *fiber.Ctx) error {
	studentID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.Validation("Invalid student id")
	}

	var courses []enrolledCourse
	err = ctrl.db.Model(&models.Course{}).
		Select("courses.id, courses.title, courses.description, enrollments.created_at AS enrolled_at").
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.student_id = ?", studentID).
		Order("enrollments.created_at DESC").
		Scan(&courses).Error
	if err != nil {
		return apperrors.Store("Failed to fetch student courses", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully", fiber.Map{
		"courses": courses,
	})
}
