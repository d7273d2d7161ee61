package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucyai/lucy-support-be/internal/services"
)

type SupportHandler struct {
	service *services.SupportService
}

func NewSupportHandler(service *services.SupportService) *SupportHandler {
	return &SupportHandler{service: service}
}

type supportRequest struct {
	UserQuery string `json:"user_query"`
	Language  string `json:"language"`
	Context   string `json:"context"`
	Sector    string `json:"sector"`
	SessionID string `json:"session_id"`
}

// Ask handles POST /api/support, the conversational endpoint.
func (h *SupportHandler) Ask(c *fiber.Ctx) error {
	var req supportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.UserQuery == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_query is required"})
	}
	if req.Language == "" {
		req.Language = "am"
	}
	if req.Sector == "" {
		req.Sector = "general"
	}

	result := h.service.Handle(c.UserContext(), services.SupportRequest{
		UserQuery: req.UserQuery,
		Language:  req.Language,
		Context:   req.Context,
		Sector:    req.Sector,
		SessionID: req.SessionID,
		CallerKey: c.Get("X-API-KEY"),
	})

	return c.JSON(result)
}
