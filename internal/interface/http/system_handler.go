package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghost-labs/ghost-auth/internal/application"
	"github.com/ghost-labs/ghost-auth/internal/domain/repository"
	"github.com/ghost-labs/ghost-auth/internal/infrastructure/jsonstore"
	"github.com/ghost-labs/ghost-auth/pkg/response"
)

// SystemHandler serves the operational endpoints: health, the user directory
// and store diagnostics.
type SystemHandler struct {
	Svc      *application.Service
	Sessions repository.SessionRepository
	Store    *jsonstore.Store // nil when the postgres driver is active
}

func NewSystemHandler(svc *application.Service, sessions repository.SessionRepository, store *jsonstore.Store) *SystemHandler {
	return &SystemHandler{Svc: svc, Sessions: sessions, Store: store}
}

// Health GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		response.Note(c, http.StatusInternalServerError, "storage unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "ghost-auth is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"users":     len(users),
	})
}

// Test GET /api/test is a smoke endpoint: a fixed message plus the user
// count and username list.
func (h *SystemHandler) Test(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		response.Note(c, http.StatusInternalServerError, "storage unavailable")
		return
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Ghost Auth API is working!",
		"totalUsers": len(users),
		"users":      names,
	})
}

// ListUsers GET /api/users
func (h *SystemHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"username":  u.Username,
			"email":     u.Email,
			"createdAt": u.CreatedAt,
			"lastLogin": u.LastLogin,
		})
	}
	c.JSON(http.StatusOK, gin.H{"totalUsers": len(users), "users": out})
}

// snapshotKeys maps snapshot file names to their wire field names.
var snapshotKeys = map[string]string{
	"users.json":          "usersFile",
	"sessions.json":       "sessionsFile",
	"login_attempts.json": "loginAttemptsFile",
}

// DebugFiles GET /api/debug/files reports snapshot file presence and totals.
// Only meaningful with the file storage driver.
func (h *SystemHandler) DebugFiles(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		response.Note(c, http.StatusInternalServerError, "storage unavailable")
		return
	}
	sessions, err := h.Sessions.Count(c.Request.Context())
	if err != nil {
		response.Note(c, http.StatusInternalServerError, "storage unavailable")
		return
	}
	body := gin.H{
		"totalUsers":    len(users),
		"totalSessions": sessions,
	}
	if h.Store != nil {
		for name, exists := range h.Store.FileStatus() {
			status := "Missing"
			if exists {
				status = "Exists"
			}
			body[snapshotKeys[name]] = status
		}
	}
	c.JSON(http.StatusOK, body)
}
