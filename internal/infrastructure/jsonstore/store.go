// Package jsonstore persists the user, session and login-attempt collections
// as JSON snapshot files. Every mutation rewrites the owning collection's
// file in full; a single mutex serializes all read-modify-persist cycles so
// concurrent writers cannot lose updates.
package jsonstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ghost-labs/ghost-auth/internal/domain/entity"
	"github.com/ghost-labs/ghost-auth/internal/domain/repository"
)

const (
	usersFile    = "users.json"
	sessionsFile = "sessions.json"
	attemptsFile = "login_attempts.json"
)

type Store struct {
	mu  sync.Mutex
	dir string

	users    []entity.User
	sessions []entity.Session
	attempts map[string]int
}

// Open loads the snapshots under dir, creating the directory if needed.
// Missing or unreadable files start their collection empty.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{dir: dir, attempts: map[string]int{}}
	if err := loadJSON(filepath.Join(dir, usersFile), &s.users); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, sessionsFile), &s.sessions); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, attemptsFile), &s.attempts); err != nil {
		return nil, err
	}
	if s.attempts == nil {
		s.attempts = map[string]int{}
	}
	return s, nil
}

func loadJSON(path string, dest any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(b, dest)
}

func (s *Store) save(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), b, 0o600)
}

func (s *Store) saveUsers() error    { return s.save(usersFile, s.users) }
func (s *Store) saveSessions() error { return s.save(sessionsFile, s.sessions) }
func (s *Store) saveAttempts() error { return s.save(attemptsFile, s.attempts) }

// Users returns the user collection as a repository.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Sessions returns the session collection as a repository.
func (s *Store) Sessions() repository.SessionRepository { return &sessionRepo{s} }

// Attempts returns the login-attempt counters as a repository.
func (s *Store) Attempts() repository.LoginAttemptRepository { return &attemptRepo{s} }

// FileStatus reports which snapshot files exist on disk, for diagnostics.
func (s *Store) FileStatus() map[string]bool {
	out := map[string]bool{}
	for _, name := range []string{usersFile, sessionsFile, attemptsFile} {
		_, err := os.Stat(filepath.Join(s.dir, name))
		out[name] = err == nil
	}
	return out
}
