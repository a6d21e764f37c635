package courseController

import (
	"errors"
	"time"

	"scms/apperrors"
	"scms/middleware"
	"scms/models"
	courseValidator "scms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller handles course CRUD and course rosters.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// GetAllCourses lists every course, newest first. Public, no auth.
func (ctrl *Controller) GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := ctrl.db.Order("created_at DESC").Find(&courses).Error; err != nil {
		return apperrors.Store("Failed to fetch courses", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully", fiber.Map{
		"courses": courses,
	})
}

// CreateCourse creates a course owned by the calling admin.
func (ctrl *Controller) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return apperrors.Validation("Invalid request body")
	}
	adminID, _ := c.Locals(middleware.LocalUserID).(uint)

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		CreatedBy:   adminID,
	}
	if err := ctrl.db.Create(&course).Error; err != nil {
		return apperrors.Store("Failed to create course", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully", fiber.Map{
		"course": course,
	})
}

// UpdateCourse replaces title and description of an existing course.
func (ctrl *Controller) UpdateCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Course not found")
		}
		return apperrors.Store("Failed to fetch course", err)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return apperrors.Validation("Invalid request body")
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	if err := ctrl.db.Save(&course).Error; err != nil {
		return apperrors.Store("Failed to update course", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully", fiber.Map{
		"course": course,
	})
}

// DeleteCourse removes a course and all enrollments referencing it in one
// transaction.
func (ctrl *Controller) DeleteCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Course not found")
		}
		return apperrors.Store("Failed to fetch course", err)
	}

	tx := ctrl.db.Begin()
	if err := tx.Where("course_id = ?", courseID).Delete(&models.Enrollment{}).Error; err != nil {
		tx.Rollback()
		return apperrors.Store("Failed to delete enrollments", err)
	}
	if err := tx.Delete(&course).Error; err != nil {
		tx.Rollback()
		return apperrors.Store("Failed to delete course", err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.Store("Failed to delete course", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}

type enrolledStudent struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// GetCourseStudents lists the students enrolled in a course, most recent
// enrollment first.
func (ctrl *Controller) GetCourseStudents(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(uint)

	var students []enrolledStudent
	err := ctrl.db.Model(&models.Student{}).
		Select("students.id, students.email, students.name, enrollments.created_at AS enrolled_at").
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.course_id = ?", courseID).
		Order("enrollments.created_at DESC").
		Scan(&students).Error
	if err != nil {
		return apperrors.Store("Failed to fetch course students", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully", fiber.Map{
		"students": students,
	})
}
