package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucyai/lucy-support-be/internal/core/speech"
)

// SpeechHandler proxies speech-to-text and text-to-speech for the widget.
type SpeechHandler struct {
	service *speech.Service
}

func NewSpeechHandler(service *speech.Service) *SpeechHandler {
	return &SpeechHandler{service: service}
}

// Transcribe turns uploaded audio into text.
func (h *SpeechHandler) Transcribe(c *fiber.Ctx) error {
	if !h.service.Configured() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "speech backend not configured"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}
	defer file.Close()

	text, err := h.service.Transcribe(c.UserContext(), fileHeader.Filename, file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"text": text})
}

type speakRequest struct {
	Text string `json:"text"`
}

// Speak renders text as mp3 audio.
func (h *SpeechHandler) Speak(c *fiber.Ctx) error {
	if !h.service.Configured() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "speech backend not configured"})
	}

	var req speakRequest
	if err := c.BodyParser(&req); err != nil || req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}

	audio, err := h.service.Synthesize(c.UserContext(), req.Text)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "audio/mpeg")
	return c.Send(audio)
}
