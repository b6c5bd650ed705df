package repository

import (
	"context"
	"errors"

	"github.com/ghost-labs/ghost-auth/internal/domain/entity"
)

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("not found")

// UserRepository defines persistence operations for user records.
// Username and email are unique across all users; FindConflict surfaces
// whichever existing record would violate that invariant.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByUsernameOrEmail matches the identifier exactly against either field.
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error)
	FindConflict(ctx context.Context, username, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
}

// SessionRepository defines persistence operations for issued sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	// DeleteByToken removes any session holding the token. Removing zero
	// sessions is not an error.
	DeleteByToken(ctx context.Context, token string) error
	Count(ctx context.Context) (int, error)
}

// LoginAttemptRepository tracks consecutive failed logins per identifier,
// keyed by the identifier exactly as supplied at login.
type LoginAttemptRepository interface {
	Get(ctx context.Context, identifier string) (int, error)
	Increment(ctx context.Context, identifier string) (int, error)
	Clear(ctx context.Context, identifier string) error
}
