package authValidator

import (
	"scms/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SignupRequest is the student signup payload.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

// StudentLoginRequest is the student login payload.
type StudentLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginRequest is the admin login payload.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.Validation("Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return apperrors.Validation(signupMessage(err))
		}
		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// StudentLogin validator middleware
func StudentLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StudentLoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.Validation("Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return apperrors.Validation("Email and password are required")
		}
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// AdminLogin validator middleware
func AdminLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AdminLoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.Validation("Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return apperrors.Validation("Username and password are required")
		}
		c.Locals("validatedAdminLogin", reqData)
		return c.Next()
	}
}

func signupMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Invalid request body"
	}
	fe := errs[0]
	switch fe.Field() {
	case "Email":
		return "Invalid email format"
	case "Password":
		if fe.Tag() == "min" {
			return "Password must be at least 6 characters long"
		}
		return "Password is required"
	}
	return "Invalid request body"
}
