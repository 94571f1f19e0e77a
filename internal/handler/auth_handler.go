package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/handler/middleware"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/service"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/validator"
)

type AuthHandler struct {
	authService   *service.AuthService
	validator     *validator.Validator
	secureCookies bool
}

func NewAuthHandler(authService *service.AuthService, validator *validator.Validator, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		validator:     validator,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	result, err := h.authService.Register(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Username or email already exists",
			})
		}
		return err
	}

	h.setSessionCookie(c, result.Token, result.ExpiresAt)

	profile := result.Profile
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "User registered successfully",
		"id":       profile.ID,
		"username": profile.Username,
		"email":    profile.Email,
		"fullName": profile.FullName,
		"role":     profile.Role,
		"address":  profile.Address,
	})
}

// Login handles user login with email or username
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Email == "" && req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Either email or username is required",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	result, err := h.authService.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One generic message for unknown user and wrong password alike.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		}
		return err
	}

	h.setSessionCookie(c, result.Token, result.ExpiresAt)

	profile := result.Profile
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Login successful",
		"id":       profile.ID,
		"username": profile.Username,
		"email":    profile.Email,
		"role":     profile.Role,
	})
}

// Logout revokes the current session token. Idempotent: a request without a
// cookie still succeeds.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(middleware.TokenCookie)

	if err := h.authService.Logout(c.Context(), token); err != nil {
		return err
	}

	h.clearSessionCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}
