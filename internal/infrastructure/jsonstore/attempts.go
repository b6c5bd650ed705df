package jsonstore

import (
	"context"
)

type attemptRepo struct {
	s *Store
}

func (r *attemptRepo) Get(_ context.Context, identifier string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.attempts[identifier], nil
}

func (r *attemptRepo) Increment(_ context.Context, identifier string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.attempts[identifier]++
	n := r.s.attempts[identifier]
	return n, r.s.saveAttempts()
}

func (r *attemptRepo) Clear(_ context.Context, identifier string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.attempts[identifier]; !ok {
		return nil
	}
	delete(r.s.attempts, identifier)
	return r.s.saveAttempts()
}
