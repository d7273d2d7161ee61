package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lucyai/lucy-support-be/internal/core/analytics"
	"github.com/lucyai/lucy-support-be/internal/core/usage"
	"github.com/lucyai/lucy-support-be/internal/store"
)

// maxSearchResults caps the conversation search response.
const maxSearchResults = 100

type ConversationHandler struct {
	store    *store.Store
	activity *usage.Log
}

func NewConversationHandler(st *store.Store, activity *usage.Log) *ConversationHandler {
	return &ConversationHandler{store: st, activity: activity}
}

// Search returns conversation turns matching ?search=, newest first.
func (h *ConversationHandler) Search(c *fiber.Ctx) error {
	turns := h.store.SearchTurns(c.Query("search"), maxSearchResults)
	return c.JSON(turns)
}

// Analytics returns aggregate counts for the admin dashboard.
func (h *ConversationHandler) Analytics(c *fiber.Ctx) error {
	summary := analytics.Summarize(
		h.store.Clients(),
		h.store.Appointments(),
		h.store.Turns(),
		time.Now(),
	)
	return c.JSON(summary)
}

// Activity returns the most recent 20 usage-log entries, newest first.
func (h *ConversationHandler) Activity(c *fiber.Ctx) error {
	return c.JSON(h.activity.Recent(20))
}
