package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lucyai/lucy-support-be/internal/models"
	"github.com/lucyai/lucy-support-be/internal/store"
)

type AppointmentHandler struct {
	store *store.Store
}

func NewAppointmentHandler(st *store.Store) *AppointmentHandler {
	return &AppointmentHandler{store: st}
}

// List returns the full appointment collection.
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	appointments := h.store.Appointments()
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return c.JSON(appointments)
}

// Create stores a new appointment. A caller-supplied id is honored when
// free; otherwise an APT id is generated.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if appointment.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	id, err := h.store.CreateAppointment(appointment)
	if err != nil {
		if errors.Is(err, store.ErrExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create appointment"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "created", "id": id})
}

// Update merges partial fields into an existing appointment.
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch models.AppointmentPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	if err := h.store.UpdateAppointment(id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "appointment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update appointment"})
	}
	return c.JSON(fiber.Map{"status": "updated", "id": id})
}

// Delete removes an appointment permanently.
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.store.DeleteAppointment(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "appointment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete appointment"})
	}
	return c.JSON(fiber.Map{"status": "deleted", "id": id})
}
