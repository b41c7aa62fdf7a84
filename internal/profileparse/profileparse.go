// Package profileparse extracts plain profile text from uploaded
// files. Supported formats are plain text, PDF, and DOCX, chosen by
// file extension.
package profileparse

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
)

// ExtractText reads the file at path and returns its plain text.
// Unsupported extensions return ErrInvalidInput.
func ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading profile file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return string(data), nil
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported profile file %q: %w", filepath.Base(path), domain.ErrInvalidInput)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	text, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	return string(text), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing docx: %w", err)
	}
	defer doc.Close()

	return stripDocxTags(doc.Editable().GetContent()), nil
}

// stripDocxTags removes the WordprocessingML markup that GetContent
// leaves in place, keeping only the text runs.
func stripDocxTags(content string) string {
	var out strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
			out.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			out.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(out.String()), " ")
}
