package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lucyai/lucy-support-be/internal/models"
	"github.com/lucyai/lucy-support-be/internal/store"
)

type ClientHandler struct {
	store *store.Store
}

func NewClientHandler(st *store.Store) *ClientHandler {
	return &ClientHandler{store: st}
}

// List returns the full client collection.
func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients := h.store.Clients()
	if clients == nil {
		clients = []models.Client{}
	}
	return c.JSON(clients)
}

// Create stores a new client under a generated CLT id.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var client models.Client
	if err := c.BodyParser(&client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if client.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	client.ID = ""

	id, err := h.store.CreateClient(client)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create client"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "created", "id": id})
}

// Update merges partial fields into an existing client.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch models.ClientPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	if err := h.store.UpdateClient(id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "client not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update client"})
	}
	return c.JSON(fiber.Map{"status": "updated", "id": id})
}

// Delete removes a client permanently.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.store.DeleteClient(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "client not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete client"})
	}
	return c.JSON(fiber.Map{"status": "deleted", "id": id})
}
