package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"tyre-dashboard-service/internal/auth/core/domain"
	"tyre-dashboard-service/internal/auth/core/ports"
	inventory "tyre-dashboard-service/internal/inventory/core/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("session is missing or expired")
)

const DefaultSessionTTL = 12 * time.Hour

// Credentials is the single dashboard login.
type Credentials struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthUseCase struct {
	store    ports.SessionStorePort
	creds    Credentials
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
}

func NewAuthUseCase(store ports.SessionStorePort, creds Credentials, ttl time.Duration) *AuthUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthUseCase{
		store:    store,
		creds:    creds,
		ttl:      ttl,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// Login checks the credentials and opens a session with empty filters.
func (uc *AuthUseCase) Login(ctx context.Context, in LoginInput) (*domain.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(in.Password), []byte(uc.creds.Password)) == 1
	if in.Username == "" || !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	now := uc.now()
	s := &domain.Session{
		Token:     uc.newToken(),
		Username:  in.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
		Filters: inventory.FilterState{
			Panel: inventory.PanelFilters{},
			Chart: inventory.ChartFilters{},
		},
	}
	if err := uc.store.Create(ctx, s); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	err := uc.store.Delete(ctx, token)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return ErrUnauthorized
	}
	return err
}

// Authenticate resolves a token to a live session.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	s, err := uc.store.Get(ctx, token)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if s.Expired(uc.now()) {
		_ = uc.store.Delete(ctx, token)
		return nil, ErrUnauthorized
	}
	return s, nil
}

// Filters returns the session's current filter state.
func (uc *AuthUseCase) Filters(ctx context.Context, token string) (inventory.FilterState, error) {
	s, err := uc.Authenticate(ctx, token)
	if err != nil {
		return inventory.FilterState{}, err
	}
	return s.Filters, nil
}

// UpdateFilters applies a filter state transition to the session.
func (uc *AuthUseCase) UpdateFilters(
	ctx context.Context,
	token string,
	fn func(inventory.FilterState) (inventory.FilterState, error),
) (inventory.FilterState, error) {
	if _, err := uc.Authenticate(ctx, token); err != nil {
		return inventory.FilterState{}, err
	}

	s, err := uc.store.Update(ctx, token, func(s *domain.Session) error {
		next, err := fn(s.Filters)
		if err != nil {
			return err
		}
		s.Filters = next
		return nil
	})
	if errors.Is(err, ports.ErrSessionNotFound) {
		return inventory.FilterState{}, ErrUnauthorized
	}
	if err != nil {
		return inventory.FilterState{}, err
	}
	return s.Filters, nil
}

// PurgeExpired drops expired sessions every interval until ctx is done.
func (uc *AuthUseCase) PurgeExpired(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := uc.store.DeleteExpired(ctx, uc.now())
			if err != nil {
				log.Printf("purge sessions: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("purged %d expired sessions", n)
			}
		}
	}
}
