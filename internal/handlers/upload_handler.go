package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/lucyai/lucy-support-be/internal/core/extract"
	"github.com/lucyai/lucy-support-be/internal/core/scrape"
)

// UploadHandler serves the thin knowledge-base ingestion collaborators:
// file extraction and page scraping.
type UploadHandler struct {
	scraper *scrape.Scraper
}

func NewUploadHandler(scraper *scrape.Scraper) *UploadHandler {
	return &UploadHandler{scraper: scraper}
}

// Upload extracts text from an uploaded file. Extraction problems are
// reported inline in the extracted text, not as an HTTP error.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}

	text, err := extract.Text(fileHeader.Filename, data)
	if err != nil {
		text = fmt.Sprintf("[Error: %s]", err.Error())
	}

	return c.JSON(fiber.Map{
		"filename":       fileHeader.Filename,
		"extracted_text": text,
	})
}

type scrapeRequest struct {
	URL string `json:"url"`
}

// Scrape pulls a web page's main content for the knowledge base.
func (h *UploadHandler) Scrape(c *fiber.Ctx) error {
	var req scrapeRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}

	text, err := h.scraper.Extract(c.UserContext(), req.URL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"url":            req.URL,
		"extracted_text": text,
	})
}
