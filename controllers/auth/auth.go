package authController

import (
	"errors"

	"scms/apperrors"
	"scms/config"
	"scms/middleware"
	"scms/models"
	authValidator "scms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Controller handles signup and login for both identity kinds.
type Controller struct {
	db  *gorm.DB
	cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Controller {
	return &Controller{db: db, cfg: cfg}
}

// StudentSignup registers a new student and hands back a bearer token.
func (ctrl *Controller) StudentSignup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return apperrors.Validation("Invalid request body")
	}

	// Check if email already exists
	if err := ctrl.db.Where("email = ?", reqData.Email).First(&models.Student{}).Error; err == nil {
		return apperrors.Validation("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Store("Failed to check existing student", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Store("Failed to hash password", err)
	}

	newStudent := models.Student{
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Name:     reqData.Name,
	}
	if err := ctrl.db.Create(&newStudent).Error; err != nil {
		return apperrors.Store("Failed to create student", err)
	}

	token, err := middleware.GenerateToken(ctrl.cfg, newStudent.ID, middleware.RoleStudent, newStudent.Email)
	if err != nil {
		return apperrors.Store("Failed to generate token", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student created successfully", fiber.Map{
		"student": newStudent,
		"token":   token,
	})
}

// StudentLogin checks credentials against the store. Unknown email and wrong
// password are indistinguishable to the caller.
func (ctrl *Controller) StudentLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.StudentLoginRequest)
	if !ok {
		return apperrors.Validation("Invalid request body")
	}

	var student models.Student
	if err := ctrl.db.Where("email = ?", reqData.Email).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Unauthorized("Invalid credentials")
		}
		return apperrors.Store("Failed to fetch student", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(reqData.Password)); err != nil {
		return apperrors.Unauthorized("Invalid credentials")
	}

	token, err := middleware.GenerateToken(ctrl.cfg, student.ID, middleware.RoleStudent, student.Email)
	if err != nil {
		return apperrors.Store("Failed to generate token", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
		"student": student,
		"token":   token,
	})
}

// AdminLogin checks admin credentials.
func (ctrl *Controller) AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminLogin").(*authValidator.AdminLoginRequest)
	if !ok {
		return apperrors.Validation("Invalid request body")
	}

	var admin models.Admin
	if err := ctrl.db.Where("username = ?", reqData.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Unauthorized("Invalid credentials")
		}
		return apperrors.Store("Failed to fetch admin", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqData.Password)); err != nil {
		return apperrors.Unauthorized("Invalid credentials")
	}

	token, err := middleware.GenerateToken(ctrl.cfg, admin.ID, middleware.RoleAdmin, admin.Username)
	if err != nil {
		return apperrors.Store("Failed to generate token", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
		"admin": admin,
		"token": token,
	})
}
