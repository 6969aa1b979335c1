package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"tracker/backend/config"
	"tracker/backend/models"
	"tracker/backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		SecretKey:  "testsecret",
		LessonsDir: filepath.Join(dir, "lessons"),
	}
	require.NoError(t, os.Mkdir(cfg.LessonsDir, 0755))

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, utils.Migrate(db))

	app := fiber.New()
	SetupRoutes(app, db, cfg)

	return &testEnv{app: app, db: db, cfg: cfg}
}

func (e *testEnv) createUser(t *testing.T, username, password string, isAdmin bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Username: username, PasswordHash: string(hash), IsAdmin: isAdmin}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	token, _ := result["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}, token string) (map[string]interface{}, int) {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result, resp.StatusCode
}

func TestIndexReturnsPlanAndStats(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	stats := result["stats"].(map[string]interface{})
	assert.Equal(t, float64(55), stats["total_days"])
	assert.Equal(t, float64(0), stats["completed_days"])
	assert.Len(t, result["weeks"], 8)
}

func TestUnknownWeekRedirectsHome(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/week/99", "/week/abc"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	}
}

func TestWeekViewMergesProgress(t *testing.T) {
	env := newTestEnv(t)

	result, status := postJSON(t, env.app, "/api/toggle_day",
		map[string]interface{}{"week": 1, "day": 2}, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, true, result["completed"])

	postJSON(t, env.app, "/api/toggle_task",
		map[string]interface{}{"week": 1, "day": 2, "task_name": "Binary Gap"}, "")
	postJSON(t, env.app, "/api/update_notes",
		map[string]interface{}{"week": 1, "day": 2, "notes": "done early"}, "")

	req := httptest.NewRequest("GET", "/week/1", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result2 map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result2))

	progress := result2["progress"].(map[string]interface{})
	day2 := progress["2"].(map[string]interface{})
	assert.Equal(t, true, day2["day_completed"])
	assert.Equal(t, "done early", day2["notes"])

	tasks := day2["tasks"].(map[string]interface{})
	binaryGap := tasks["Binary Gap"].(map[string]interface{})
	assert.Equal(t, true, binaryGap["completed"])
}

func TestToggleDayValidation(t *testing.T) {
	env := newTestEnv(t)

	result, status := postJSON(t, env.app, "/api/toggle_day",
		map[string]interface{}{"week": 1}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, result["success"])
	assert.NotEmpty(t, result["error"])

	_, status = postJSON(t, env.app, "/api/toggle_day",
		map[string]interface{}{"week": "one", "day": 1}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	_, status = postJSON(t, env.app, "/api/toggle_day",
		map[string]interface{}{"week": 0, "day": 1}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestUpdateTaskScore(t *testing.T) {
	env := newTestEnv(t)

	result, status := postJSON(t, env.app, "/api/update_task_score",
		map[string]interface{}{"week": 2, "day": 10, "task_name": "GenomicRangeQuery", "score": 88}, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, result["success"])

	_, status = postJSON(t, env.app, "/api/update_task_score",
		map[string]interface{}{"week": 2, "day": 10, "task_name": "GenomicRangeQuery"}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "student", "secret123", false)

	// Wrong password and unknown user answer identically.
	result, status := postJSON(t, env.app, "/login",
		map[string]string{"username": "student", "password": "wrong"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", result["error"])

	result2, status2 := postJSON(t, env.app, "/login",
		map[string]string{"username": "ghost", "password": "wrong"}, "")
	assert.Equal(t, status, status2)
	assert.Equal(t, result["error"], result2["error"])

	token := env.login(t, "student", "secret123")

	req := httptest.NewRequest("GET", "/api/session", nil)
	req.Header.Set("Authorization", token)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var session map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	user := session["user"].(map[string]interface{})
	assert.Equal(t, "student", user["username"])
	assert.Equal(t, false, user["is_admin"])
}

func TestSessionWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/api/session", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSaveLessonAuthorization(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "student", "secret123", false)
	env.createUser(t, "boss", "secret123", true)

	payload := map[string]string{"lesson_file": "new-notes.md", "content": "# Notes\n"}

	// Unauthenticated callers are rejected cleanly.
	result, status := postJSON(t, env.app, "/api/save_lesson", payload, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, result["success"])

	// Authenticated but not admin.
	studentToken := env.login(t, "student", "secret123")
	result, status = postJSON(t, env.app, "/api/save_lesson", payload, studentToken)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, false, result["success"])

	// Admin succeeds and the file lands in the lesson directory.
	adminToken := env.login(t, "boss", "secret123")
	result, status = postJSON(t, env.app, "/api/save_lesson", payload, adminToken)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, result["success"])

	content, err := os.ReadFile(filepath.Join(env.cfg.LessonsDir, "new-notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Notes\n", string(content))

	// Traversal attempts stay 400 even for admins.
	_, status = postJSON(t, env.app, "/api/save_lesson",
		map[string]string{"lesson_file": "../escape.md", "content": "x"}, adminToken)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetLessonContent(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(env.cfg.LessonsDir, "sample.md"), []byte("# Sample\n"), 0644))

	req := httptest.NewRequest("GET", "/api/get_lesson_content?lesson_file=sample.md", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "# Sample\n", result["content"])

	req = httptest.NewRequest("GET", "/api/get_lesson_content?lesson_file=missing.md", nil)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/get_lesson_content?lesson_file=../../etc/passwd.md", nil)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLessonsList(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/lessons", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	lessons := result["lessons"].([]interface{})
	assert.NotEmpty(t, lessons)
	first := lessons[0].(map[string]interface{})
	assert.Equal(t, "week1-typescript-basics.md", first["file"])
}
