package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lucyai/lucy-support-be/internal/models"
	"github.com/lucyai/lucy-support-be/internal/store"
)

// Handler serves the thin operator signup/login collaborator endpoints.
type Handler struct {
	store      *store.Store
	jwtService *JWTService
}

func NewHandler(st *store.Store, jwtService *JWTService) *Handler {
	return &Handler{store: st, jwtService: jwtService}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers an operator account and returns a session token.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create user"})
	}

	if err := h.store.CreateUser(req.Email, models.User{Password: hash}); err != nil {
		if errors.Is(err, store.ErrExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create user"})
	}

	token, err := h.jwtService.GenerateToken(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue token"})
	}
	return c.JSON(fiber.Map{"status": "success", "token": token})
}

// Login verifies credentials and returns a session token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	user, ok := h.store.GetUser(req.Email)
	if !ok || VerifyPassword(user.Password, req.Password) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid"})
	}

	token, err := h.jwtService.GenerateToken(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue token"})
	}
	return c.JSON(fiber.Map{"status": "success", "token": token})
}
