package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucyai/lucy-support-be/internal/models"
	"github.com/lucyai/lucy-support-be/internal/store"
)

type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

type settingsResponse struct {
	models.BotConfig
	SupportedLanguages []models.Language `json:"supported_languages"`
}

// Get returns the fully resolved configuration.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(settingsResponse{
		BotConfig:          h.store.BotConfig(),
		SupportedLanguages: models.SupportedLanguages(),
	})
}

// Update merges partial fields into the stored configuration.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var patch models.BotConfigPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	if _, err := h.store.MergeBotConfig(patch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save settings"})
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

// WidgetConfig returns the public-safe branding subset, unauthenticated.
func (h *SettingsHandler) WidgetConfig(c *fiber.Ctx) error {
	cfg := h.store.BotConfig()
	return c.JSON(fiber.Map{
		"bot_name":        cfg.BotName,
		"theme_color":     cfg.ThemeColor,
		"welcome_message": cfg.WelcomeMessage,
	})
}
