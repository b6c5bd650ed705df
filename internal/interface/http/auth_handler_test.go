package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/ghost-labs/ghost-auth/internal/application"
	"github.com/ghost-labs/ghost-auth/internal/infrastructure/jsonstore"
	"github.com/ghost-labs/ghost-auth/internal/interface/middleware"
	"github.com/ghost-labs/ghost-auth/pkg/helpers"
)

func newTestRouter(t *testing.T) (*gin.Engine, *helpers.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	jwt := helpers.NewJWTManager("test-secret")

	svc := application.NewService(
		store.Users(), store.Sessions(), store.Attempts(),
		jwt, logger, 5, 24*time.Hour, 30*24*time.Hour,
	)
	h := NewAuthHandler(svc, logger)
	sys := NewSystemHandler(svc, store.Sessions(), store)

	r := gin.New()
	r.GET("/health", sys.Health)
	api := r.Group("/api")
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	api.GET("/check-auth", h.CheckAuth)
	api.POST("/reset-attempts", h.ResetAttempts)
	api.GET("/users", sys.ListUsers)
	api.GET("/test", sys.Test)
	api.GET("/debug/files", sys.DebugFiles)
	auth := api.Group("/")
	auth.Use(middleware.Auth(jwt))
	auth.GET("/profile", h.Profile)
	return r, jwt
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed), "body: %s", w.Body.String())
	return w, parsed
}

func registerAlice(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/register",
		`{"username":"alice","email":"alice@x.com","password":"Passw0rd!","confirmPassword":"Passw0rd!"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	return body["token"].(string)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/register",
		`{"username":"alice","email":"alice@x.com","password":"Passw0rd!","confirmPassword":"Passw0rd!"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, true, body["success"])
	require.NotEmpty(t, body["token"])
	require.Equal(t, "/dashboard.html", body["redirect"])
	user := body["user"].(map[string]any)
	require.Equal(t, "alice", user["username"])
	require.Equal(t, "alice@x.com", user["email"])
	require.NotEmpty(t, user["id"])
	_, hasPassword := user["password"]
	require.False(t, hasPassword)

	w, body = doJSON(t, r, http.MethodPost, "/api/login",
		`{"username":"alice","password":"Passw0rd!"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"])
	require.Equal(t, "24h", body["expiresIn"])

	w, body = doJSON(t, r, http.MethodPost, "/api/login",
		`{"username":"alice","password":"Passw0rd!","rememberMe":true}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "30d", body["expiresIn"])
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAlice(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/register",
		`{"username":"bob","email":"alice@x.com","password":"Passw0rd!","confirmPassword":"Passw0rd!"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "User with this email already exists", body["message"])

	w, body = doJSON(t, r, http.MethodPost, "/api/register",
		`{"username":"alice","email":"bob@x.com","password":"Passw0rd!","confirmPassword":"Passw0rd!"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "User with this username already exists", body["message"])
}

func TestLoginLockoutEndToEnd(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAlice(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/login",
		`{"username":"alice","password":"wrong"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid username or password. 4 attempts left", body["message"])

	for i := 0; i < 3; i++ {
		w, _ = doJSON(t, r, http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
	w, body = doJSON(t, r, http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid username or password. No attempts left", body["message"])

	// Locked now, even with the correct password.
	w, body = doJSON(t, r, http.MethodPost, "/api/login", `{"username":"alice","password":"Passw0rd!"}`, "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, false, body["success"])

	// Administrative reset releases the lock.
	w, body = doJSON(t, r, http.MethodPost, "/api/reset-attempts", `{"username":"alice"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Login attempts reset", body["message"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/login", `{"username":"alice","password":"Passw0rd!"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLoginCounterClearedBySuccess(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAlice(t, r)

	for i := 0; i < 4; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
	w, _ := doJSON(t, r, http.MethodPost, "/api/login", `{"username":"alice","password":"Passw0rd!"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid username or password. 4 attempts left", body["message"])
}

func TestCheckAuthNeverErrors(t *testing.T) {
	r, jwt := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/check-auth", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, body["authenticated"])

	w, body = doJSON(t, r, http.MethodGet, "/api/check-auth", "", "forged.token.value")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, body["authenticated"])

	expired, _, err := jwt.Generate("u1", "alice", -time.Minute)
	require.NoError(t, err)
	w, body = doJSON(t, r, http.MethodGet, "/api/check-auth", "", expired)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, body["authenticated"])

	token := registerAlice(t, r)
	w, body = doJSON(t, r, http.MethodGet, "/api/check-auth", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["authenticated"])
	require.Equal(t, "alice", body["user"].(map[string]any)["username"])
}

func TestLogoutIdempotentOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAlice(t, r)

	for i := 0; i < 2; i++ {
		w, body := doJSON(t, r, http.MethodPost, "/api/logout", "", token)
		require.Equal(t, http.StatusOK, w.Code, "logout #%d", i+1)
		require.Equal(t, true, body["success"])
		require.Equal(t, "Logged out successfully", body["message"])
	}

	// Logout without any token still succeeds.
	w, body := doJSON(t, r, http.MethodPost, "/api/logout", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"])
}

func TestProfileStatuses(t *testing.T) {
	r, jwt := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/profile", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Not authenticated", body["message"])

	w, body = doJSON(t, r, http.MethodGet, "/api/profile", "", "garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid token", body["message"])

	// Valid signature but no such user.
	orphan, _, err := jwt.Generate("missing-user", "nobody", time.Hour)
	require.NoError(t, err)
	w, body = doJSON(t, r, http.MethodGet, "/api/profile", "", orphan)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "User not found", body["message"])

	token := registerAlice(t, r)
	w, body = doJSON(t, r, http.MethodGet, "/api/profile", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	user := body["user"].(map[string]any)
	require.Equal(t, "alice", user["username"])
	require.NotEmpty(t, user["createdAt"])
}

func TestHealthAndDirectoryEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAlice(t, r)

	w, body := doJSON(t, r, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", body["status"])
	require.Equal(t, float64(1), body["users"])

	w, body = doJSON(t, r, http.MethodGet, "/api/users", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), body["totalUsers"])
	users := body["users"].([]any)
	require.Len(t, users, 1)
	entry := users[0].(map[string]any)
	require.Equal(t, "alice", entry["username"])
	_, hasPassword := entry["password"]
	require.False(t, hasPassword)

	w, body = doJSON(t, r, http.MethodGet, "/api/test", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Ghost Auth API is working!", body["message"])
	require.Equal(t, float64(1), body["totalUsers"])
	require.Equal(t, []any{"alice"}, body["users"])

	w, body = doJSON(t, r, http.MethodGet, "/api/debug/files", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Exists", body["usersFile"])
	require.Equal(t, "Exists", body["sessionsFile"])
	require.Equal(t, "Missing", body["loginAttemptsFile"])
	require.Equal(t, float64(1), body["totalUsers"])
	require.Equal(t, float64(1), body["totalSessions"])
}

func TestValidationMessagesOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		body string
		want string
	}{
		{`{"username":"alice","email":"alice@x.com","password":"Passw0rd!"}`, "All fields are required"},
		{`{"username":"alice","email":"alice@x.com","password":"Passw0rd!","confirmPassword":"Other1!"}`, "Passwords do not match"},
		{`{"username":"alice","email":"nope","password":"Passw0rd!","confirmPassword":"Passw0rd!"}`, "Please enter a valid email address"},
		{`{"username":"a!","email":"alice@x.com","password":"Passw0rd!","confirmPassword":"Passw0rd!"}`, "Username must be 3-20 characters and can only contain letters, numbers, and underscores"},
		{`{"username":"alice","email":"alice@x.com","password":"abc12345","confirmPassword":"abc12345"}`, "Password must contain at least one uppercase letter"},
	}
	for i, tc := range cases {
		w, body := doJSON(t, r, http.MethodPost, "/api/register", tc.body, "")
		require.Equal(t, http.StatusBadRequest, w.Code, fmt.Sprintf("case %d", i))
		require.Equal(t, tc.want, body["message"])
		require.Equal(t, false, body["success"])
	}
}
