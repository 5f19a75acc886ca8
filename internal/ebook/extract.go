package ebook

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoText indicates the source document exists but yielded no text,
// distinct from the document being missing entirely.
var ErrNoText = errors.New("no text could be extracted from the source document")

// Extract reads the source document at path and returns its plain text.
// PDFs are extracted with pdftotext (from poppler-utils); anything else
// is read as-is. A missing document and an empty extraction are both
// fatal to the caller, with distinct errors.
func Extract(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("source document not found at %s: %w", path, err)
	}

	var text string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		extracted, err := extractPDF(path)
		if err != nil {
			return "", err
		}
		text = extracted
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}

	return text, nil
}

// extractPDF extracts the full text of a PDF in one pass.
func extractPDF(path string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not found: install poppler-utils (brew install poppler on macOS)")
	}

	cmd := exec.Command("pdftotext", "-layout", path, "-")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", path, err)
	}

	return string(output), nil
}
