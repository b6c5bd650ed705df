package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ghost-labs/ghost-auth/internal/domain/entity"
	"github.com/ghost-labs/ghost-auth/internal/domain/repository"
	"github.com/ghost-labs/ghost-auth/pkg/helpers"
	"github.com/ghost-labs/ghost-auth/pkg/validation"
)

// Service owns user records, session tokens and per-identifier failed-login
// counters. It depends only on the repository interfaces, not on a concrete
// persistence engine.
type Service struct {
	Users    repository.UserRepository
	Sessions repository.SessionRepository
	Attempts repository.LoginAttemptRepository
	JWT      *helpers.JWTManager
	Logger   *logrus.Logger

	MaxAttempts int
	TokenTTL    time.Duration
	RememberTTL time.Duration
}

func NewService(users repository.UserRepository, sessions repository.SessionRepository, attempts repository.LoginAttemptRepository, jwt *helpers.JWTManager, logger *logrus.Logger, maxAttempts int, tokenTTL, rememberTTL time.Duration) *Service {
	return &Service{
		Users:       users,
		Sessions:    sessions,
		Attempts:    attempts,
		JWT:         jwt,
		Logger:      logger,
		MaxAttempts: maxAttempts,
		TokenTTL:    tokenTTL,
		RememberTTL: rememberTTL,
	}
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthResult is returned by Register and Login: the user (password hash is
// stripped by the handler layer), the issued token and its expiry.
type AuthResult struct {
	User      *entity.User
	Token     string
	ExpiresIn string // "24h" or "30d"
	ExpiresAt time.Time
}

// Register validates input in a fixed order (first failure wins), creates the
// user and issues an initial session valid for TokenTTL.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, &ValidationError{Field: "fields", Message: "All fields are required"}
	}
	if in.Password != in.ConfirmPassword {
		return nil, &ValidationError{Field: "confirmPassword", Message: "Passwords do not match"}
	}
	if !validation.Email(in.Email) {
		return nil, &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	if !validation.Username(in.Username) {
		return nil, &ValidationError{Field: "username", Message: "Username must be 3-20 characters and can only contain letters, numbers, and underscores"}
	}
	if err := validation.Password(in.Password); err != nil {
		return nil, &ValidationError{Field: "password", Message: err.Error()}
	}

	existing, err := s.Users.FindConflict(ctx, in.Username, in.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, &StorageError{Op: "find conflicting user", Err: err}
	}
	if existing != nil {
		field := "username"
		if existing.Email == in.Email {
			field = "email"
		}
		return nil, &DuplicateUserError{Field: field}
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, &StorageError{Op: "hash password", Err: err}
	}

	u := &entity.User{
		ID:        uuid.NewString(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  hash,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, &StorageError{Op: "create user", Err: err}
	}

	res, err := s.issueSession(ctx, u, false)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	return res, nil
}

// Login verifies credentials for a username or email identifier. Failed
// attempts accumulate per identifier until MaxAttempts, after which logins
// are rejected outright until the counter is reset.
func (s *Service) Login(ctx context.Context, identifier, password string, remember bool) (*AuthResult, error) {
	if identifier == "" || password == "" {
		return nil, &ValidationError{Field: "fields", Message: "Username and password are required"}
	}

	count, err := s.Attempts.Get(ctx, identifier)
	if err != nil {
		return nil, &StorageError{Op: "read login attempts", Err: err}
	}
	if count >= s.MaxAttempts {
		return nil, ErrLockedOut
	}

	u, err := s.Users.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, &StorageError{Op: "lookup user", Err: err}
		}
		if _, aerr := s.Attempts.Increment(ctx, identifier); aerr != nil {
			return nil, &StorageError{Op: "record failed attempt", Err: aerr}
		}
		return nil, &InvalidCredentialsError{AttemptsLeft: -1}
	}

	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	if !helpers.CompareHashAndPassword(u.Password, password) {
		n, aerr := s.Attempts.Increment(ctx, identifier)
		if aerr != nil {
			return nil, &StorageError{Op: "record failed attempt", Err: aerr}
		}
		left := s.MaxAttempts - n
		if left < 0 {
			left = 0
		}
		s.Logger.WithFields(logrus.Fields{"identifier": identifier, "attempts_left": left}).Warn("failed login")
		return nil, &InvalidCredentialsError{AttemptsLeft: left}
	}

	if err := s.Attempts.Clear(ctx, identifier); err != nil {
		return nil, &StorageError{Op: "clear login attempts", Err: err}
	}
	now := time.Now()
	u.LastLogin = &now
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, &StorageError{Op: "update last login", Err: err}
	}

	res, err := s.issueSession(ctx, u, remember)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("login successful")
	return res, nil
}

// Logout removes any session whose token matches. Removing zero sessions is
// not an error, and the token's signature is not verified first: equality
// match on the stored token suffices.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.Sessions.DeleteByToken(ctx, token); err != nil {
		return &StorageError{Op: "delete session", Err: err}
	}
	return nil
}

// CheckAuth resolves a token to its live user record. It reports false for
// any missing, forged or expired token and for tokens of removed or
// deactivated users; it never fails.
func (s *Service) CheckAuth(ctx context.Context, token string) (*entity.User, bool) {
	if token == "" {
		return nil, false
	}
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, false
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil || !u.IsActive {
		return nil, false
	}
	return u, true
}

// ProfileByID fetches the live user record behind an already-verified token.
// A deleted or deactivated user yields ErrUserNotFound even though the token
// itself verified: the embedded claims are never trusted alone.
func (s *Service) ProfileByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, &StorageError{Op: "lookup user", Err: err}
	}
	if !u.IsActive {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ResetAttempts clears the failure counter for an identifier unconditionally.
// Authorization is the caller's concern.
func (s *Service) ResetAttempts(ctx context.Context, identifier string) error {
	if identifier == "" {
		return nil
	}
	if err := s.Attempts.Clear(ctx, identifier); err != nil {
		return &StorageError{Op: "clear login attempts", Err: err}
	}
	return nil
}

// ListUsers returns all user records for the directory endpoint.
func (s *Service) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list users", Err: err}
	}
	return users, nil
}

func (s *Service) issueSession(ctx context.Context, u *entity.User, remember bool) (*AuthResult, error) {
	ttl := s.TokenTTL
	expiresIn := "24h"
	if remember {
		ttl = s.RememberTTL
		expiresIn = "30d"
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Username, ttl)
	if err != nil {
		return nil, &StorageError{Op: "sign token", Err: err}
	}
	sess := &entity.Session{
		UserID:    u.ID,
		Token:     token,
		CreatedAt: time.Now(),
		ExpiresAt: exp,
	}
	if err := s.Sessions.Create(ctx, sess); err != nil {
		return nil, &StorageError{Op: "create session", Err: err}
	}
	return &AuthResult{User: u, Token: token, ExpiresIn: expiresIn, ExpiresAt: exp}, nil
}
