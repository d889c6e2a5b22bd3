package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tyre-dashboard-service/internal/auth/adapters/memory"
	inventory "tyre-dashboard-service/internal/inventory/core/domain"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestUseCase() (*AuthUseCase, *clock) {
	c := &clock{t: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	uc := NewAuthUseCase(memory.NewSessionStore(), Credentials{Username: "admin", Password: "admin"}, time.Hour)
	uc.now = c.now
	uc.newToken = func() string { return "token-1" }
	return uc, c
}

// ------------------------------------------------------------
// LOGIN
// ------------------------------------------------------------

func TestLogin_Success(t *testing.T) {
	uc, c := newTestUseCase()

	s, err := uc.Login(context.Background(), LoginInput{Username: "admin", Password: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Token != "token-1" || s.Username != "admin" {
		t.Fatalf("unexpected session %+v", s)
	}
	if !s.ExpiresAt.Equal(c.t.Add(time.Hour)) {
		t.Fatalf("unexpected expiry %v", s.ExpiresAt)
	}
	if s.Filters.Panel == nil || s.Filters.Chart == nil {
		t.Fatalf("new session must start with empty, non-nil filters")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc, _ := newTestUseCase()

	tests := []LoginInput{
		{Username: "admin", Password: "wrong"},
		{Username: "root", Password: "admin"},
		{Username: "", Password: ""},
	}
	for _, in := range tests {
		if _, err := uc.Login(context.Background(), in); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%+v: expected ErrInvalidCredentials, got %v", in, err)
		}
	}
}

func TestLogin_RealTokensAreUUIDs(t *testing.T) {
	uc := NewAuthUseCase(memory.NewSessionStore(), Credentials{Username: "a", Password: "b"}, 0)

	s1, err := uc.Login(context.Background(), LoginInput{Username: "a", Password: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, _ := uc.Login(context.Background(), LoginInput{Username: "a", Password: "b"})

	if len(s1.Token) != 36 || s1.Token == s2.Token {
		t.Fatalf("expected distinct uuid tokens, got %q and %q", s1.Token, s2.Token)
	}
}

// ------------------------------------------------------------
// AUTHENTICATE / LOGOUT
// ------------------------------------------------------------

func TestAuthenticate_Expiry(t *testing.T) {
	uc, c := newTestUseCase()
	ctx := context.Background()
	_, _ = uc.Login(ctx, LoginInput{Username: "admin", Password: "admin"})

	if _, err := uc.Authenticate(ctx, "token-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.t = c.t.Add(time.Hour)
	if _, err := uc.Authenticate(ctx, "token-1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after expiry, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()
	_, _ = uc.Login(ctx, LoginInput{Username: "admin", Password: "admin"})

	if err := uc.Logout(ctx, "token-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Authenticate(ctx, "token-1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
	if err := uc.Logout(ctx, "token-1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized on second logout, got %v", err)
	}
}

// ------------------------------------------------------------
// FILTER STATE
// ------------------------------------------------------------

func TestUpdateFilters(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()
	_, _ = uc.Login(ctx, LoginInput{Username: "admin", Password: "admin"})

	got, err := uc.UpdateFilters(ctx, "token-1", func(s inventory.FilterState) (inventory.FilterState, error) {
		s.Chart = inventory.ChartFilters{"uom": "KG"}
		return s, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Chart["uom"] != "KG" {
		t.Fatalf("unexpected filters %+v", got)
	}

	boom := errors.New("boom")
	if _, err := uc.UpdateFilters(ctx, "token-1", func(s inventory.FilterState) (inventory.FilterState, error) {
		return inventory.FilterState{}, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	state, err := uc.Filters(ctx, "token-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Chart["uom"] != "KG" {
		t.Fatalf("failed transition must keep previous state, got %+v", state)
	}

	if _, err := uc.UpdateFilters(ctx, "unknown", func(s inventory.FilterState) (inventory.FilterState, error) {
		return s, nil
	}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
