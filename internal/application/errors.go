package application

import (
	"errors"
	"fmt"
)

var (
	// ErrLockedOut rejects a login before any password check once the
	// identifier's failure counter reaches the limit.
	ErrLockedOut = errors.New("too many failed attempts")

	// ErrAccountDisabled rejects logins for deactivated accounts.
	ErrAccountDisabled = errors.New("account is deactivated")

	// ErrUserNotFound is returned when a structurally valid token resolves
	// to no live user record.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError is a client-fixable input problem found during registration.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DuplicateUserError reports a username/email uniqueness violation.
// Field names whichever attribute of the conflicting record matched.
type DuplicateUserError struct {
	Field string // "email" or "username"
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("User with this %s already exists", e.Field)
}

// InvalidCredentialsError is deliberately generic so callers cannot probe
// whether an identifier exists. AttemptsLeft is -1 when the identifier was
// unknown and the remaining-attempts hint must not be shown.
type InvalidCredentialsError struct {
	AttemptsLeft int
}

func (e *InvalidCredentialsError) Error() string { return "invalid username or password" }

// StorageError wraps a persistence substrate failure. It is surfaced as an
// opaque server error and never retried automatically.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }
