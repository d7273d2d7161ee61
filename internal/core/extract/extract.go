package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxTextSize caps extracted text at 1MB.
const maxTextSize = 1024 * 1024

// Text extracts plain text from an uploaded knowledge-base file. PDFs go
// through the pdf reader; txt/md/csv are taken as-is.
func Text(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".txt", ".md", ".csv":
		text := string(data)
		if len(text) > maxTextSize {
			text = text[:maxTextSize]
		}
		return strings.TrimSpace(text), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages with extraction errors, don't fail the upload
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
		if sb.Len() > maxTextSize {
			break
		}
	}

	out := sb.String()
	if len(out) > maxTextSize {
		out = out[:maxTextSize]
	}
	return strings.TrimSpace(out), nil
}
