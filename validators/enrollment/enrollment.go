package enrollmentValidator

import (
	"strconv"

	"scms/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// EnrollmentRequest is the enroll payload.
type EnrollmentRequest struct {
	StudentID uint `json:"student_id" validate:"required"`
	CourseID  uint `json:"course_id" validate:"required"`
}

// CreateEnrollment validator middleware
func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.Validation("Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return apperrors.Validation("student_id and course_id are required")
		}
		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// EnrollmentPair validates the :student_id/:course_id route params.
func EnrollmentPair() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, err := strconv.ParseUint(c.Params("student_id"), 10, 64)
		if err != nil || studentID == 0 {
			return apperrors.Validation("Invalid student id")
		}
		courseID, err := strconv.ParseUint(c.Params("course_id"), 10, 64)
		if err != nil || courseID == 0 {
			return apperrors.Validation("Invalid course id")
		}
		c.Locals("studentID", uint(studentID))
		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
