package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/routes"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/storage"
	"github.com/codebem/plataforma-backend/internal/store"
	"github.com/codebem/plataforma-backend/internal/utils"
)

type testEnv struct {
	app          *fiber.App
	provider     *state.Provider
	cfg          *config.Config
	studentToken string
	adminToken   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{
		JWTSecret:      "testsecret",
		UploadMaxBytes: 4 << 20,
	}

	mem := store.NewMemoryStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha12345"), bcrypt.MinCost)
	require.NoError(t, err)

	seed := func(collection, id string, doc any) {
		data, err := json.Marshal(doc)
		require.NoError(t, err)
		require.NoError(t, mem.Put(ctx, collection, id, data))
	}
	seed(store.CollectionUsers, "student-1", models.User{
		ID: "student-1", Name: "Ana", Email: "ana@example.com",
		PasswordHash: string(hash), Role: models.RoleStudent, Active: true,
		CompletedLessonIDs: []string{},
	})
	seed(store.CollectionUsers, "admin-1", models.User{
		ID: "admin-1", Name: "Bruno", Email: "bruno@example.com",
		PasswordHash: string(hash), Role: models.RoleAdmin, Active: true,
		CompletedLessonIDs: []string{},
	})
	seed(store.CollectionCourses, "c1", models.Course{
		ID:            "c1",
		Title:         "Go do Zero",
		LessonRelease: models.ReleaseSequential,
		InstructorID:  "admin-1",
		Modules: []models.Module{
			{ID: "m1", Title: "Módulo 1", Lessons: []models.Lesson{
				{ID: "l1", Title: "Aula 1", Duration: "10 min", XP: 10, Type: models.LessonText},
				{ID: "l2", Title: "Aula 2", Duration: "10 min", XP: 10, Type: models.LessonText},
			}},
		},
	})

	provider := state.NewProvider(mem, zap.NewNop())
	require.NoError(t, provider.Load(ctx))

	objects, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	app := fiber.New()
	routes.SetupRoutes(app, provider, objects, cfg)

	studentToken, err := utils.GenerateJWTToken("student-1", cfg)
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWTToken("admin-1", cfg)
	require.NoError(t, err)

	return &testEnv{
		app:          app,
		provider:     provider,
		cfg:          cfg,
		studentToken: studentToken,
		adminToken:   adminToken,
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]interface{}) {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	status, result := doJSON(t, env.app, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     "Carla",
		"email":    "carla@example.com",
		"password": "senha12345",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, result["token"])
	user := result["user"].(map[string]interface{})
	assert.Equal(t, models.RoleStudent, user["role"])
	assert.Empty(t, user["passwordHash"])

	status, result = doJSON(t, env.app, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "carla@example.com",
		"password": "senha12345",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, result["token"])

	status, _ = doJSON(t, env.app, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "carla@example.com",
		"password": "errada",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	status, result := doJSON(t, env.app, "POST", "/api/auth/register", "", map[string]interface{}{
		"password": "123",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	details := result["details"].([]interface{})
	assert.Len(t, details, 3)
}

func TestCatalogRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	status, _ := doJSON(t, env.app, "GET", "/api/courses/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, result := doJSON(t, env.app, "GET", "/api/courses/", env.studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	data := result["data"].([]interface{})
	require.Len(t, data, 1)
	course := data[0].(map[string]interface{})
	assert.Equal(t, "Go do Zero", course["title"])
	assert.Equal(t, "Bruno", course["instructor"])
}

func TestGetCourseLockFlags(t *testing.T) {
	env := newTestEnv(t)

	status, result := doJSON(t, env.app, "GET", "/api/courses/c1", env.studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	modules := data["modules"].([]interface{})
	lessons := modules[0].(map[string]interface{})["lessons"].([]interface{})
	first := lessons[0].(map[string]interface{})
	second := lessons[1].(map[string]interface{})
	assert.Equal(t, false, first["locked"])
	assert.Equal(t, true, second["locked"])
}

func TestCompleteLessonEndpoint(t *testing.T) {
	env := newTestEnv(t)

	status, result := doJSON(t, env.app, "POST", "/api/progress/lessons/l1/complete", env.studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["xp"])

	// Idempotent through the API too.
	status, result = doJSON(t, env.app, "POST", "/api/progress/lessons/l1/complete", env.studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["xp"])
	assert.Len(t, data["completedLessonIds"].([]interface{}), 1)
}

func TestDashboardEndpoint(t *testing.T) {
	env := newTestEnv(t)

	doJSON(t, env.app, "POST", "/api/progress/lessons/l1/complete", env.studentToken, nil)

	status, result := doJSON(t, env.app, "GET", "/api/progress/dashboard", env.studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	inProgress := data["inProgress"].([]interface{})
	require.Len(t, inProgress, 1)
	assert.Equal(t, float64(50), inProgress[0].(map[string]interface{})["percentage"])
}

func TestEditorRequiresRole(t *testing.T) {
	env := newTestEnv(t)

	status, _ := doJSON(t, env.app, "POST", "/api/admin/courses/", env.studentToken, map[string]interface{}{
		"title": "Não pode",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestCreateAndSaveCourse(t *testing.T) {
	env := newTestEnv(t)

	status, result := doJSON(t, env.app, "POST", "/api/admin/courses/", env.adminToken, map[string]interface{}{
		"title":     "Novo curso",
		"track":     "backend",
		"shortDesc": "desc",
	})
	require.Equal(t, fiber.StatusCreated, status)
	created := result["data"].(map[string]interface{})
	id := created["id"].(string)
	require.NotEmpty(t, id)

	// Saving without modules fails validation, everything reported.
	status, result = doJSON(t, env.app, "PUT", "/api/admin/courses/"+id, env.adminToken, map[string]interface{}{
		"title": "Novo curso",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.NotEmpty(t, result["details"])

	status, _ = doJSON(t, env.app, "PUT", "/api/admin/courses/"+id, env.adminToken, map[string]interface{}{
		"title": "Novo curso",
		"modules": []map[string]interface{}{
			{"id": "m1", "title": "Módulo", "lessons": []map[string]interface{}{
				{"id": "l1", "title": "Aula", "duration": "5 min", "xp": 5, "type": "text"},
			}},
		},
	})
	assert.Equal(t, fiber.StatusOK, status)

	course, ok := env.provider.Course(id)
	require.True(t, ok)
	assert.Len(t, course.Modules, 1)
}

func TestDuplicateCourseEndpoint(t *testing.T) {
	env := newTestEnv(t)

	status, result := doJSON(t, env.app, "POST", "/api/admin/courses/c1/duplicate", env.adminToken, nil)
	require.Equal(t, fiber.StatusCreated, status)
	dup := result["data"].(map[string]interface{})
	assert.Equal(t, "Go do Zero (Cópia)", dup["title"])
	assert.NotEqual(t, "c1", dup["id"])
	assert.Len(t, env.provider.Courses(), 2)
}

func TestImportCourseValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	status, result := doJSON(t, env.app, "POST", "/api/admin/courses/import", env.adminToken, map[string]interface{}{
		"modules": []map[string]interface{}{},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	details := result["details"].([]interface{})
	assert.Contains(t, details, "course title is required")
	assert.Contains(t, details, "course must have at least one module")
}

func TestDeleteCourseNeedsConfirm(t *testing.T) {
	env := newTestEnv(t)

	status, _ := doJSON(t, env.app, "DELETE", "/api/admin/courses/c1", env.adminToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	_, ok := env.provider.Course("c1")
	assert.True(t, ok)

	status, _ = doJSON(t, env.app, "DELETE", "/api/admin/courses/c1?confirm=true", env.adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
	_, ok = env.provider.Course("c1")
	assert.False(t, ok)
}

func TestDraftModuleAndLessonEdits(t *testing.T) {
	env := newTestEnv(t)
	course, _ := env.provider.Course("c1")

	status, result := doJSON(t, env.app, "POST", "/api/admin/draft/modules", env.adminToken, course)
	require.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	draft := data["course"].(map[string]interface{})
	assert.Len(t, draft["modules"].([]interface{}), 2)

	// Nothing was persisted: only the explicit save writes.
	stored, _ := env.provider.Course("c1")
	assert.Len(t, stored.Modules, 1)

	// Deleting a module without confirmation is refused.
	status, _ = doJSON(t, env.app, "DELETE", "/api/admin/draft/modules/0", env.adminToken, course)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, result = doJSON(t, env.app, "DELETE", "/api/admin/draft/modules/0?confirm=true", env.adminToken, course)
	require.Equal(t, fiber.StatusOK, status)
	data = result["data"].(map[string]interface{})
	draft = data["course"].(map[string]interface{})
	assert.Empty(t, draft["modules"])
}

func TestMentorshipLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	// Students cannot open slots.
	status, _ := doJSON(t, env.app, "POST", "/api/mentorship/sessions", env.studentToken, map[string]interface{}{
		"date": "2026-09-10", "time": "19:00",
	})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, result := doJSON(t, env.app, "POST", "/api/mentorship/sessions", env.adminToken, map[string]interface{}{
		"date": "2026-09-10", "time": "19:00",
	})
	require.Equal(t, fiber.StatusCreated, status)
	session := result["data"].(map[string]interface{})
	id := session["id"].(string)

	status, _ = doJSON(t, env.app, "POST", "/api/mentorship/sessions/"+id+"/book", env.studentToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	// Second booking conflicts.
	status, _ = doJSON(t, env.app, "POST", "/api/mentorship/sessions/"+id+"/book", env.adminToken, nil)
	assert.Equal(t, fiber.StatusConflict, status)

	// Booked slots cannot be deleted, even with confirmation.
	status, _ = doJSON(t, env.app, "DELETE", "/api/mentorship/sessions/"+id+"?confirm=true", env.adminToken, nil)
	assert.Equal(t, fiber.StatusConflict, status)

	// The booked student cancels; the slot reopens.
	status, _ = doJSON(t, env.app, "POST", "/api/mentorship/sessions/"+id+"/cancel", env.studentToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
	reopened, ok := env.provider.Session(id)
	require.True(t, ok)
	assert.False(t, reopened.IsBooked)

	status, _ = doJSON(t, env.app, "DELETE", "/api/mentorship/sessions/"+id+"?confirm=true", env.adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestProjectShowcase(t *testing.T) {
	env := newTestEnv(t)

	status, result := doJSON(t, env.app, "POST", "/api/community/projects", env.studentToken, map[string]interface{}{
		"title":       "Robô de estudos",
		"description": "CLI em Go",
	})
	require.Equal(t, fiber.StatusCreated, status)
	project := result["data"].(map[string]interface{})
	id := project["id"].(string)

	status, _ = doJSON(t, env.app, "POST", "/api/community/projects/"+id+"/comments", env.adminToken, map[string]interface{}{
		"text": "Mandou bem!",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	status, result = doJSON(t, env.app, "GET", "/api/community/projects/"+id, env.studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	comments := data["comments"].([]interface{})
	require.Len(t, comments, 1)
	assert.Equal(t, "Bruno", comments[0].(map[string]interface{})["authorName"])
}

func TestAdminUserManagement(t *testing.T) {
	env := newTestEnv(t)

	status, _ := doJSON(t, env.app, "GET", "/api/admin/users/", env.studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, result := doJSON(t, env.app, "PUT", "/api/admin/users/student-1/role", env.adminToken, map[string]interface{}{
		"role": "instructor",
	})
	require.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "instructor", data["role"])

	status, _ = doJSON(t, env.app, "PUT", "/api/admin/users/student-1/role", env.adminToken, map[string]interface{}{
		"role": "superuser",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, _ = doJSON(t, env.app, "POST", "/api/admin/users/student-1/deactivate", env.adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	user, _ := env.provider.User("student-1")
	assert.False(t, user.Active)

	// Deactivated accounts are soft-marked, never removed.
	assert.Len(t, env.provider.Users(), 2)
}

func uploadRequest(t *testing.T, field, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadImageValidation(t *testing.T) {
	env := newTestEnv(t)

	// A text payload is not an accepted image type.
	body, contentType := uploadRequest(t, "file", "notes.txt", []byte("just text"))
	req := httptest.NewRequest("POST", "/api/uploads/images", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", env.studentToken)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)

	// A real PNG signature passes and yields a public URL.
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	body, contentType = uploadRequest(t, "file", "avatar.png", png)
	req = httptest.NewRequest("POST", "/api/uploads/images", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", env.studentToken)
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	url := result["data"].(map[string]interface{})["url"].(string)
	assert.Contains(t, url, "/uploads/")
	assert.Contains(t, url, ".png")
}
