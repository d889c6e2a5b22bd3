package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tyre-dashboard-service/internal/auth/core/domain"
	"tyre-dashboard-service/internal/auth/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeAuthUseCase struct {
	LoginFn        func(ctx context.Context, in usecase.LoginInput) (*domain.Session, error)
	LogoutFn       func(ctx context.Context, token string) error
	AuthenticateFn func(ctx context.Context, token string) (*domain.Session, error)
	lastToken      string
}

func (f *fakeAuthUseCase) Login(ctx context.Context, in usecase.LoginInput) (*domain.Session, error) {
	if f.LoginFn != nil {
		return f.LoginFn(ctx, in)
	}
	return nil, nil
}

func (f *fakeAuthUseCase) Logout(ctx context.Context, token string) error {
	f.lastToken = token
	if f.LogoutFn != nil {
		return f.LogoutFn(ctx, token)
	}
	return nil
}

func (f *fakeAuthUseCase) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	f.lastToken = token
	if f.AuthenticateFn != nil {
		return f.AuthenticateFn(ctx, token)
	}
	return &domain.Session{Token: token}, nil
}

func setupTestApp(uc AuthUseCase) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(uc)

	app.Post("/api/login", h.Login)
	app.Post("/api/logout", h.RequireSession, h.Logout)
	app.Get("/api/private", h.RequireSession, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalSessionToken).(string))
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()
	return resp, body
}

func loginRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ------------------------------------------------------------
// LOGIN
// ------------------------------------------------------------

func TestLogin_Success(t *testing.T) {
	expires := time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC)
	uc := &fakeAuthUseCase{
		LoginFn: func(ctx context.Context, in usecase.LoginInput) (*domain.Session, error) {
			if in.Username != "admin" || in.Password != "admin" {
				t.Fatalf("unexpected input %+v", in)
			}
			return &domain.Session{Token: "tok", Username: "admin", ExpiresAt: expires}, nil
		},
	}

	resp, body := doRequest(t, setupTestApp(uc), loginRequest(t, LoginRequest{Username: "admin", Password: "admin"}))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out LoginResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if out.Token != "tok" || !out.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc := &fakeAuthUseCase{
		LoginFn: func(ctx context.Context, in usecase.LoginInput) (*domain.Session, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}

	resp, _ := doRequest(t, setupTestApp(uc), loginRequest(t, LoginRequest{Username: "admin", Password: "x"}))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := doRequest(t, setupTestApp(&fakeAuthUseCase{}), req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLogin_InternalError(t *testing.T) {
	uc := &fakeAuthUseCase{
		LoginFn: func(ctx context.Context, in usecase.LoginInput) (*domain.Session, error) {
			return nil, errors.New("store down")
		},
	}

	resp, _ := doRequest(t, setupTestApp(uc), loginRequest(t, LoginRequest{Username: "admin", Password: "admin"}))
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// SESSION MIDDLEWARE
// ------------------------------------------------------------

func TestRequireSession_BearerAndHeader(t *testing.T) {
	uc := &fakeAuthUseCase{}
	app := setupTestApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/private", nil)
	req.Header.Set("Authorization", "Bearer abc")
	resp, body := doRequest(t, app, req)
	if resp.StatusCode != http.StatusOK || string(body) != "abc" {
		t.Fatalf("expected 200 abc, got %d %s", resp.StatusCode, body)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/private", nil)
	req.Header.Set("X-Session-Token", "def")
	resp, body = doRequest(t, app, req)
	if resp.StatusCode != http.StatusOK || string(body) != "def" {
		t.Fatalf("expected 200 def, got %d %s", resp.StatusCode, body)
	}
}

func TestRequireSession_Unauthorized(t *testing.T) {
	uc := &fakeAuthUseCase{
		AuthenticateFn: func(ctx context.Context, token string) (*domain.Session, error) {
			return nil, usecase.ErrUnauthorized
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/private", nil)
	resp, _ := doRequest(t, setupTestApp(uc), req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLogout(t *testing.T) {
	uc := &fakeAuthUseCase{}

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer abc")
	resp, _ := doRequest(t, setupTestApp(uc), req)

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if uc.lastToken != "abc" {
		t.Fatalf("expected logout of abc, got %q", uc.lastToken)
	}
}
