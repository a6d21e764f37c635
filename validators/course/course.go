package courseValidator

import (
	"strconv"

	"scms/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseRequest is the create/update payload.
type CourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.Validation("Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return apperrors.Validation("Title is required")
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.Validation("Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return apperrors.Validation("Title is required")
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route param for delete/detail routes.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

func parseCourseID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return apperrors.Validation("Invalid course id")
	}
	c.Locals("courseID", uint(id))
	return nil
}
