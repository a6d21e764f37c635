package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"scms/apperrors"
	"scms/config"
	"scms/database"
	"scms/routers/authRoutes"
	"scms/routers/courseRoutes"
	"scms/routers/enrollmentRoutes"
	"scms/routers/studentRoutes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TestConfig returns a config pointing at a fresh sqlite file under the
// test's temp dir.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Mode:             config.ModeTest,
		Port:             "0",
		TestDatabaseFile: filepath.Join(t.TempDir(), "scms_test.db"),
		JWTSecret:        "test-secret-key",
		JWTAlgorithm:     "HS256",
		CORSOrigins:      "*",
		AdminUsername:    "admin",
		AdminPassword:    "admin123",
	}
}

// SetupTestApp builds a fully routed app backed by a throwaway sqlite store
// with the default admin seeded.
func SetupTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	cfg := TestConfig(t)
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect test database: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: apperrors.Handler})
	authRoutes.SetupAuthRoutes(app, db, cfg)
	courseRoutes.SetupCourseRoutes(app, db, cfg)
	studentRoutes.SetupStudentRoutes(app, db, cfg)
	enrollmentRoutes.SetupEnrollmentRoutes(app, db, cfg)

	return app, db, cfg
}

// DoJSON performs a request with an optional JSON body and bearer token.
func DoJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}
	return resp
}

// Envelope is the decoded standard response envelope.
type Envelope struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// ParseEnvelope decodes a response body into the standard envelope.
func ParseEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("Failed to decode response %q: %v", raw, err)
	}
	return env
}

// AdminToken logs in as the seeded default admin and returns the token.
func AdminToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := DoJSON(t, app, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Admin login failed with status %d", resp.StatusCode)
	}
	env := ParseEnvelope(t, resp)
	token, _ := env.Data["token"].(string)
	if token == "" {
		t.Fatal("Admin login returned no token")
	}
	return token
}

// SignupStudent registers a student and returns its id and token.
func SignupStudent(t *testing.T, app *fiber.App, email, password, name string) (uint, string) {
	t.Helper()

	resp := DoJSON(t, app, http.MethodPost, "/api/students/signup", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Signup for %s failed with status %d", email, resp.StatusCode)
	}
	env := ParseEnvelope(t, resp)

	token, _ := env.Data["token"].(string)
	student, _ := env.Data["student"].(map[string]interface{})
	id, _ := student["ID"].(float64)
	if token == "" || id == 0 {
		t.Fatalf("Signup for %s returned incomplete data: %+v", email, env.Data)
	}
	return uint(id), token
}

// CreateCourse creates a course as admin and returns its id.
func CreateCourse(t *testing.T, app *fiber.App, adminToken, title, description string) uint {
	t.Helper()

	resp := DoJSON(t, app, http.MethodPost, "/api/courses", map[string]string{
		"title":       title,
		"description": description,
	}, adminToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Course create %q failed with status %d", title, resp.StatusCode)
	}
	env := ParseEnvelope(t, resp)
	course, _ := env.Data["course"].(map[string]interface{})
	id, _ := course["ID"].(float64)
	if id == 0 {
		t.Fatalf("Course create returned no id: %+v", env.Data)
	}
	return uint(id)
}
