package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/domain"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/jwt"
)

// TokenCookie is the cookie carrying the session token.
const TokenCookie = "token"

// RevocationChecker answers whether a token has been revoked. Satisfied by
// pkg/blacklist.TokenBlacklist.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Authorize reports whether a role satisfies a required role set. An empty
// set means any authenticated identity is acceptable.
func Authorize(required []string, role domain.Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if domain.Role(r) == role {
			return true
		}
	}
	return false
}

// AuthMiddleware is the access control gate: it extracts the session token
// from the request cookie, verifies it, rejects revoked tokens and enforces
// the route's role set. Verified claims are attached to the request locals.
//
// Revocation is checked here on every verification, in both services, so a
// logged-out token cannot be replayed anywhere for the rest of its lifetime.
func AuthMiddleware(tokenService *jwt.TokenService, revocations RevocationChecker, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(TokenCookie)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		claims, err := tokenService.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		revoked, err := revocations.IsRevoked(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to verify token status",
			})
		}
		if revoked {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		if !Authorize(roles, claims.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden: insufficient permissions",
			})
		}

		c.Locals("claims", claims)
		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)
		c.Locals("token", token)

		return c.Next()
	}
}

// ClaimsFromContext returns the claims attached by AuthMiddleware, or nil on
// a route that never passed through the gate.
func ClaimsFromContext(c *fiber.Ctx) *domain.Claims {
	claims, _ := c.Locals("claims").(*domain.Claims)
	return claims
}
