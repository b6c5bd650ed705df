package jsonstore

import (
	"context"

	"github.com/ghost-labs/ghost-auth/internal/domain/entity"
)

type sessionRepo struct {
	s *Store
}

func (r *sessionRepo) Create(_ context.Context, sess *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions = append(r.s.sessions, *sess)
	return r.s.saveSessions()
}

func (r *sessionRepo) DeleteByToken(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.sessions[:0]
	removed := false
	for _, sess := range r.s.sessions {
		if sess.Token == token {
			removed = true
			continue
		}
		kept = append(kept, sess)
	}
	r.s.sessions = kept
	if !removed {
		return nil
	}
	return r.s.saveSessions()
}

func (r *sessionRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.sessions), nil
}
