package memory

import (
	"context"
	"sync"
	"time"

	"tyre-dashboard-service/internal/auth/core/domain"
	"tyre-dashboard-service/internal/auth/core/ports"
)

// SessionStore keeps sessions in process memory. Callers only ever see
// copies, so a session can not be changed outside Update.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*domain.Session)}
}

var _ ports.SessionStorePort = (*SessionStore)(nil)

func (s *SessionStore) Create(ctx context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.Token] = sess.Clone()
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	return sess.Clone(), nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return ports.ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}

func (s *SessionStore) Update(ctx context.Context, token string, fn func(*domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.sessions[token]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}

	next := cur.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	s.sessions[token] = next
	return next.Clone(), nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			n++
		}
	}
	return n, nil
}
