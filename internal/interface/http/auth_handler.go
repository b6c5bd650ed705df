package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ghost-labs/ghost-auth/internal/application"
	"github.com/ghost-labs/ghost-auth/internal/domain/entity"
	"github.com/ghost-labs/ghost-auth/internal/interface/middleware"
	"github.com/ghost-labs/ghost-auth/pkg/response"
)

const dashboardRedirect = "/dashboard.html"

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type resetAttemptsRequest struct {
	Username string `json:"username"`
}

func userPayload(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "username": u.Username, "email": u.Email}
}

// failFor maps application errors onto the wire contract. Validation and
// business-rule failures become 400s with their message; the lockout becomes
// 429; anything else is an opaque server error.
func (h *AuthHandler) failFor(c *gin.Context, err error) {
	var ve *application.ValidationError
	var de *application.DuplicateUserError
	var ce *application.InvalidCredentialsError
	switch {
	case errors.As(err, &ve):
		response.Fail(c, http.StatusBadRequest, ve.Message)
	case errors.As(err, &de):
		response.Fail(c, http.StatusBadRequest, de.Error())
	case errors.As(err, &ce):
		msg := "Invalid username or password"
		if ce.AttemptsLeft > 0 {
			msg = fmt.Sprintf("%s. %d attempts left", msg, ce.AttemptsLeft)
		} else if ce.AttemptsLeft == 0 {
			msg += ". No attempts left"
		}
		response.Fail(c, http.StatusBadRequest, msg)
	case errors.Is(err, application.ErrLockedOut):
		response.Fail(c, http.StatusTooManyRequests, "Too many failed attempts. Please try again in 15 minutes.")
	case errors.Is(err, application.ErrAccountDisabled):
		response.Fail(c, http.StatusBadRequest, "Account is deactivated. Please contact support.")
	default:
		h.Logger.WithError(err).Error("request failed")
		response.Fail(c, http.StatusInternalServerError, "Server error")
	}
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.failFor(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Account created successfully! Redirecting to dashboard...",
		"token":    res.Token,
		"user":     userPayload(res.User),
		"redirect": dashboardRedirect,
	})
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password, req.RememberMe)
	if err != nil {
		h.failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Login successful! Redirecting to dashboard...",
		"token":     res.Token,
		"user":      userPayload(res.User),
		"expiresIn": res.ExpiresIn,
		"redirect":  dashboardRedirect,
	})
}

// Logout POST /api/logout — idempotent; always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.BearerToken(c)
	if err := h.Svc.Logout(c.Request.Context(), token); err != nil {
		h.failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// CheckAuth GET /api/check-auth — never errors; an absent or invalid token
// simply reads as unauthenticated.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	token := middleware.BearerToken(c)
	u, ok := h.Svc.CheckAuth(c.Request.Context(), token)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": userPayload(u)})
}

// Profile GET /api/profile (auth middleware verified the token and set userID)
func (h *AuthHandler) Profile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.ProfileByID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Note(c, http.StatusNotFound, "User not found")
			return
		}
		h.failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        u.ID,
			"username":  u.Username,
			"email":     u.Email,
			"createdAt": u.CreatedAt,
			"lastLogin": u.LastLogin,
		},
	})
}

// ResetAttempts POST /api/reset-attempts — administrative; an external
// authorization gate is expected to guard it in a real deployment.
func (h *AuthHandler) ResetAttempts(c *gin.Context) {
	var req resetAttemptsRequest
	_ = c.ShouldBindJSON(&req)
	if err := h.Svc.ResetAttempts(c.Request.Context(), req.Username); err != nil {
		h.failFor(c, err)
		return
	}
	response.Note(c, http.StatusOK, "Login attempts reset")
}
