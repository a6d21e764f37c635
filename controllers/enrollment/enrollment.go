package enrollmentController

import (
	"errors"
	"strings"

	"scms/apperrors"
	"scms/middleware"
	"scms/models"
	enrollmentValidator "scms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller handles enrolling and unenrolling students.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

const alreadyEnrolledMessage = "Student already enrolled in this course"

// EnrollStudent creates an enrollment pair. A duplicate pair is absorbed and
// reported as already enrolled, never as an error.
func (ctrl *Controller) EnrollStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.EnrollmentRequest)
	if !ok {
		return apperrors.Validation("Invalid request body")
	}

	if err := ctrl.db.First(&models.Course{}, reqData.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Course not found")
		}
		return apperrors.Store("Failed to fetch course", err)
	}
	if err := ctrl.db.First(&models.Student{}, reqData.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Student not found")
		}
		return apperrors.Store("Failed to fetch student", err)
	}

	// Check if the student is already enrolled
	var existing models.Enrollment
	err := ctrl.db.Where("student_id = ? AND course_id = ?", reqData.StudentID, reqData.CourseID).
		First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, alreadyEnrolledMessage, nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Store("Failed to check enrollment", err)
	}

	enrollment := models.Enrollment{
		StudentID: reqData.StudentID,
		CourseID:  reqData.CourseID,
	}
	if err := ctrl.db.Create(&enrollment).Error; err != nil {
		// A concurrent insert of the same pair loses on the unique index;
		// report it the same way as the precheck.
		if isUniqueViolation(err) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, alreadyEnrolledMessage, nil)
		}
		return apperrors.Store("Failed to enroll student", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student enrolled successfully", fiber.Map{
		"enrollment": enrollment,
	})
}

// UnenrollStudent removes an enrollment pair. Removing an absent pair is not
// an error.
func (ctrl *Controller) UnenrollStudent(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentID").(uint)
	courseID, _ := c.Locals("courseID").(uint)

	if err := ctrl.db.Where("student_id = ? AND course_id = ?", studentID, courseID).
		Delete(&models.Enrollment{}).Error; err != nil {
		return apperrors.Store("Failed to unenroll student", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student unenrolled successfully", nil)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
