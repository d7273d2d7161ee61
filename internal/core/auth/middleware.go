package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lucyai/lucy-support-be/internal/store"
)

// DemoKey always passes the support-channel gate and skips rate limiting.
// This is a documented unauthenticated-demo bypass for the hosted
// dashboard preview, not an oversight.
const DemoKey = "dashboard-demo-key"

// RequireAdmin validates the administrative session token. The 401 body
// carries a login hint for the dashboard.
func RequireAdmin(jwtService *JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
				"login": "/auth",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format. Use: Bearer <token>",
				"login": "/auth",
			})
		}

		email, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
				"login": "/auth",
			})
		}

		c.Locals("email", email)
		return c.Next()
	}
}

// RequireClientKey validates the support-channel API key against the
// resolved bot config. A nil limiter means rate limiting is disabled.
func RequireClientKey(st *store.Store, limiter *RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("X-API-KEY")
		if key == DemoKey {
			return c.Next()
		}

		cfg := st.BotConfig()
		if key == "" || key != cfg.ClientAPIKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if limiter != nil && !limiter.Allow(key) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded",
			})
		}

		return c.Next()
	}
}
