package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coincoast/memesboost-backend/internal/common/config"
	"github.com/coincoast/memesboost-backend/internal/common/middleware"
	"github.com/coincoast/memesboost-backend/internal/features/task/models"
	taskservice "github.com/coincoast/memesboost-backend/internal/features/task/service"
	userhttp "github.com/coincoast/memesboost-backend/internal/features/user/delivery/http"
	usermodels "github.com/coincoast/memesboost-backend/internal/features/user/models"
	userservice "github.com/coincoast/memesboost-backend/internal/features/user/service"
	"github.com/coincoast/memesboost-backend/internal/platform/db"

	tasksqlstore "github.com/coincoast/memesboost-backend/internal/features/task/repository/sqlstore"
	usersqlstore "github.com/coincoast/memesboost-backend/internal/features/user/repository/sqlstore"
)

const adminToken = "test-admin-token"

// newTestRouter wires the task and user features over a throwaway SQLite file,
// the same composition the server does at startup.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Storage.Driver = config.DriverSQLite
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "test.sqlite")
	cfg.UserCap = 222
	cfg.Boost.Cooldown = 24 * time.Hour

	database, err := db.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	userRepo := usersqlstore.New(database)
	taskRepo := tasksqlstore.New(database)

	userSvc := userservice.NewUserService(userRepo, taskRepo, cfg.UserCap, cfg.Boost.Cooldown)
	taskSvc := taskservice.NewTaskService(taskRepo, userRepo, nil)

	router := gin.New()
	api := router.Group("/api")
	requireAdmin := middleware.RequireAdmin(adminToken)
	NewTaskHandler(taskSvc).RegisterRoutes(api, requireAdmin)
	userhttp.NewUserHandler(userSvc).RegisterRoutes(api, requireAdmin)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set(middleware.AdminTokenHeader, adminToken)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTask(t *testing.T, router *gin.Engine, points int64) models.Task {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/tasks", models.CreateTaskRequest{
		Description: "Follow on X",
		Link:        "https://x.com/memesboost",
		Points:      points,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	return task
}

func registerUser(t *testing.T, router *gin.Engine, wallet string) usermodels.UserWithTasks {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/users", usermodels.RegisterRequest{
		WalletAddress: wallet,
		XProfile:      "@meme",
	}, false)
	require.Equal(t, http.StatusCreated, w.Code)

	var user usermodels.UserWithTasks
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	return user
}

func TestCompletionJourney(t *testing.T) {
	router := newTestRouter(t)

	task := createTask(t, router, 10)
	user := registerUser(t, router, "0xABC")
	assert.Equal(t, int64(0), user.Points)
	assert.Equal(t, []int64{}, user.CompletedTasks)

	complete := models.CompleteRequest{UserID: user.ID, TaskID: task.ID}
	w := doJSON(t, router, http.MethodPost, "/api/tasks/complete", complete, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CompleteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Points)
	assert.Equal(t, []int64{task.ID}, resp.CompletedTasks)

	// The replay is a no-op returning the identical body.
	w = doJSON(t, router, http.MethodPost, "/api/tasks/complete", complete, false)
	require.Equal(t, http.StatusOK, w.Code)
	var replay models.CompleteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replay))
	assert.Equal(t, resp, replay)

	// The completion shows up on the admin roster.
	w = doJSON(t, router, http.MethodGet, "/api/users", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var users []usermodels.UserWithTasks
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, int64(10), users[0].Points)
	assert.Equal(t, []int64{task.ID}, users[0].CompletedTasks)
}

func TestCompleteIgnoresClientPoints(t *testing.T) {
	router := newTestRouter(t)

	task := createTask(t, router, 10)
	user := registerUser(t, router, "0xABC")

	w := doJSON(t, router, http.MethodPost, "/api/tasks/complete", models.CompleteRequest{
		UserID:     user.ID,
		TaskID:     task.ID,
		TaskPoints: 9999,
	}, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CompleteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Points, "the award comes from the stored task, never the client")
}

func TestCompleteUnknownRefs(t *testing.T) {
	router := newTestRouter(t)
	task := createTask(t, router, 10)
	user := registerUser(t, router, "0xABC")

	w := doJSON(t, router, http.MethodPost, "/api/tasks/complete", models.CompleteRequest{UserID: user.ID, TaskID: 999}, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/tasks/complete", models.CompleteRequest{UserID: 999, TaskID: task.ID}, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/tasks/complete", models.CompleteRequest{}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTaskRequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	body := models.CreateTaskRequest{Description: "Follow", Link: "https://x.com/a", Points: 5}
	w := doJSON(t, router, http.MethodPost, "/api/tasks", body, false)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString("{}"))
	req.Header.Set(middleware.AdminTokenHeader, "wrong-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateTaskValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/tasks", models.CreateTaskRequest{Description: "Follow", Link: "https://x.com/a", Points: 0}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestToggleHidesTask(t *testing.T) {
	router := newTestRouter(t)
	task := createTask(t, router, 10)

	w := doJSON(t, router, http.MethodGet, "/api/tasks", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)

	off := false
	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/toggle", task.ID), models.ToggleRequest{IsActive: &off}, true)
	require.Equal(t, http.StatusOK, w.Code)
	var toggled models.ToggleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	assert.False(t, toggled.IsActive)

	w = doJSON(t, router, http.MethodGet, "/api/tasks", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestToggleUnknownTask(t *testing.T) {
	router := newTestRouter(t)

	on := true
	w := doJSON(t, router, http.MethodPatch, "/api/tasks/42/toggle", models.ToggleRequest{IsActive: &on}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/api/tasks/42/toggle", struct{}{}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTaskCascades(t *testing.T) {
	router := newTestRouter(t)

	task := createTask(t, router, 10)
	user := registerUser(t, router, "0xABC")

	w := doJSON(t, router, http.MethodPost, "/api/tasks/complete", models.CompleteRequest{UserID: user.ID, TaskID: task.ID}, false)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), nil, true)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The completion record went with the task; the earned points stay.
	w = doJSON(t, router, http.MethodGet, "/api/users", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var users []usermodels.UserWithTasks
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, []int64{}, users[0].CompletedTasks)
	assert.Equal(t, int64(10), users[0].Points)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
