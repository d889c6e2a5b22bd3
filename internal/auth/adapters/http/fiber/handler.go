package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tyre-dashboard-service/internal/auth/core/domain"
	"tyre-dashboard-service/internal/auth/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// LocalSessionToken is the c.Locals key RequireSession stores the token under.
const LocalSessionToken = "session_token"

type AuthUseCase interface {
	Login(ctx context.Context, in usecase.LoginInput) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

type AuthHandler struct {
	uc AuthUseCase
}

func NewAuthHandler(uc AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary Sign in
// @Description Checks the dashboard credentials and opens a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	s, err := h.uc.Login(c.UserContext(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid credentials",
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(LoginResponse{
		Token:     s.Token,
		Username:  s.Username,
		ExpiresAt: s.ExpiresAt,
	})
}

// Logout godoc
// @Summary Sign out
// @Tags Auth
// @Security SessionToken
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(LocalSessionToken).(string)

	if err := h.uc.Logout(c.UserContext(), token); err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			return unauthorized(c)
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
	return c.SendStatus(http.StatusNoContent)
}

// RequireSession rejects requests without a live session token.
func (h *AuthHandler) RequireSession(c *fiber.Ctx) error {
	token := SessionToken(c)

	if _, err := h.uc.Authenticate(c.UserContext(), token); err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			return unauthorized(c)
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	c.Locals(LocalSessionToken, token)
	return c.Next()
}

// SessionToken reads "Authorization: Bearer <token>" or X-Session-Token.
func SessionToken(c *fiber.Ctx) string {
	if auth := c.Get(fiber.HeaderAuthorization); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return strings.TrimSpace(c.Get("X-Session-Token"))
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Error:   "unauthorized",
		Message: usecase.ErrUnauthorized.Error(),
	})
}
