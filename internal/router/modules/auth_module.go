package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghost-labs/ghost-auth/internal/container"
	handlers "github.com/ghost-labs/ghost-auth/internal/interface/http"
	"github.com/ghost-labs/ghost-auth/internal/interface/middleware"
	"github.com/ghost-labs/ghost-auth/pkg/helpers"
)

// AuthModule wires the credential-store endpoints.
// Public: POST /api/register, /api/login, /api/logout, /api/reset-attempts,
// GET /api/check-auth, GET /api/users, GET /api/test.
// Protected: GET /api/profile.

type AuthModule struct {
	Handler *handlers.AuthHandler
	System  *handlers.SystemHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, sys *handlers.SystemHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, System: sys, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Coarse per-IP limits on the public endpoints; the per-identifier
	// lockout inside the store is what actually gates brute force.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)
	rg.GET("/check-auth", m.Handler.CheckAuth)
	rg.POST("/reset-attempts", m.Handler.ResetAttempts)
	rg.GET("/users", m.System.ListUsers)
	rg.GET("/test", m.System.Test)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/profile", m.Handler.Profile)
	}
}
