package authController_test

import (
	"net/http"
	"testing"

	"scms/middleware"
	"scms/models"
	"scms/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasherProperties(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	// Same password verifies, any other does not
	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("secret1")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("secret2")))

	// Salts vary between calls with the same input
	hash2, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	assert.NotEqual(t, string(hash), string(hash2))

	// Malformed hash input is a plain failure, not a panic
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte("not-a-hash"), []byte("secret1")))
}

func TestStudentSignup(t *testing.T) {
	app, db, _ := testutils.SetupTestApp(t)

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/students/signup", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
		"name":     "Asha",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := testutils.ParseEnvelope(t, resp)
	assert.True(t, env.Status)
	assert.NotEmpty(t, env.Data["token"])
	student := env.Data["student"].(map[string]interface{})
	assert.Equal(t, "a@x.com", student["email"])
	assert.Equal(t, "Asha", student["name"])
	assert.NotContains(t, student, "password")

	// Second signup with the same email must fail and create no second row
	resp = testutils.DoJSON(t, app, http.MethodPost, "/api/students/signup", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env = testutils.ParseEnvelope(t, resp)
	assert.Equal(t, "Email already registered", env.Message)

	var count int64
	require.NoError(t, db.Model(&models.Student{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStudentSignupValidation(t *testing.T) {
	app, _, _ := testutils.SetupTestApp(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"invalid email", map[string]string{"email": "not-an-email", "password": "secret1"}},
		{"short password", map[string]string{"email": "b@x.com", "password": "abc"}},
		{"missing password", map[string]string{"email": "b@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutils.DoJSON(t, app, http.MethodPost, "/api/students/signup", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestStudentLogin(t *testing.T) {
	app, _, _ := testutils.SetupTestApp(t)
	testutils.SignupStudent(t, app, "a@x.com", "secret1", "Asha")

	t.Run("correct credentials", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPost, "/api/students/login", map[string]string{
			"email":    "a@x.com",
			"password": "secret1",
		}, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		env := testutils.ParseEnvelope(t, resp)
		assert.NotEmpty(t, env.Data["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPost, "/api/students/login", map[string]string{
			"email":    "a@x.com",
			"password": "wrong-password",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPost, "/api/students/login", map[string]string{
			"email":    "nobody@x.com",
			"password": "secret1",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAdminLogin(t *testing.T) {
	app, _, cfg := testutils.SetupTestApp(t)

	t.Run("seeded default admin", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPost, "/api/admin/login", map[string]string{
			"username": "admin",
			"password": "admin123",
		}, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		env := testutils.ParseEnvelope(t, resp)

		token, _ := env.Data["token"].(string)
		require.NotEmpty(t, token)

		claims, err := middleware.VerifyToken(cfg, token)
		require.NoError(t, err)
		assert.Equal(t, middleware.RoleAdmin, claims["type"])
		assert.Equal(t, "admin", claims["username"])
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPost, "/api/admin/login", map[string]string{
			"username": "admin",
			"password": "nope",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
