package enrollmentController_test

import (
	"net/http"
	"testing"

	"scms/models"
	"scms/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollStudent(t *testing.T) {
	app, db, _ := testutils.SetupTestApp(t)
	admin := testutils.AdminToken(t, app)
	studentID, _ := testutils.SignupStudent(t, app, "a@x.com", "secret1", "")
	courseID := testutils.CreateCourse(t, app, admin, "Meditation", "")

	body := map[string]uint{"student_id": studentID, "course_id": courseID}

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/enrollments", body, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := testutils.ParseEnvelope(t, resp)
	assert.Equal(t, "Student enrolled successfully", env.Message)
	enrollment := env.Data["enrollment"].(map[string]interface{})
	assert.Equal(t, float64(studentID), enrollment["student_id"])
	assert.Equal(t, float64(courseID), enrollment["course_id"])

	// Enrolling the same pair again is a no-op, not an error
	resp = testutils.DoJSON(t, app, http.MethodPost, "/api/enrollments", body, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = testutils.ParseEnvelope(t, resp)
	assert.Equal(t, "Student already enrolled in this course", env.Message)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnrollUnknownReferences(t *testing.T) {
	app, _, _ := testutils.SetupTestApp(t)
	admin := testutils.AdminToken(t, app)
	studentID, _ := testutils.SignupStudent(t, app, "a@x.com", "secret1", "")
	courseID := testutils.CreateCourse(t, app, admin, "Meditation", "")

	tests := []struct {
		name string
		body map[string]uint
	}{
		{"unknown course", map[string]uint{"student_id": studentID, "course_id": 999}},
		{"unknown student", map[string]uint{"student_id": 999, "course_id": courseID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutils.DoJSON(t, app, http.MethodPost, "/api/enrollments", tt.body, admin)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestEnrollmentRequiresAdmin(t *testing.T) {
	app, _, _ := testutils.SetupTestApp(t)
	admin := testutils.AdminToken(t, app)
	studentID, studentToken := testutils.SignupStudent(t, app, "a@x.com", "secret1", "")
	courseID := testutils.CreateCourse(t, app, admin, "Meditation", "")

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/enrollments", map[string]uint{
		"student_id": studentID,
		"course_id":  courseID,
	}, studentToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUnenrollStudent(t *testing.T) {
	app, db, _ := testutils.SetupTestApp(t)
	admin := testutils.AdminToken(t, app)
	studentID, _ := testutils.SignupStudent(t, app, "a@x.com", "secret1", "")
	courseID := testutils.CreateCourse(t, app, admin, "Meditation", "")

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/enrollments", map[string]uint{
		"student_id": studentID,
		"course_id":  courseID,
	}, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutils.DoJSON(t, app, http.MethodDelete, "/api/enrollments/1/1", nil, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Unenrolling an absent pair is still a success
	resp = testutils.DoJSON(t, app, http.MethodDelete, "/api/enrollments/1/1", nil, admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The pair can be re-created after unenroll
	resp = testutils.DoJSON(t, app, http.MethodPost, "/api/enrollments", map[string]uint{
		"student_id": studentID,
		"course_id":  courseID,
	}, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := testutils.ParseEnvelope(t, resp)
	assert.Equal(t, "Student enrolled successfully", env.Message)
}
