package ports

import (
	"context"
	"errors"
	"time"

	"tyre-dashboard-service/internal/auth/core/domain"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionStorePort interface {
	Create(ctx context.Context, s *domain.Session) error
	// Get returns a copy; ErrSessionNotFound if the token is unknown.
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	// Update runs fn on the stored session atomically. An fn error leaves
	// the session unchanged.
	Update(ctx context.Context, token string, fn func(s *domain.Session) error) (*domain.Session, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
