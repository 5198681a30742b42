// Package extract turns uploaded resume files into plain text. PDF, DOCX,
// and TXT are supported; anything else is rejected before analysis.
//
// Per-format read failures do not abort the request: the failure reason is
// returned as the text itself ("Error reading PDF: ..."), and the analysis
// pipeline treats that string as low-quality input. Only an unsupported
// extension is a hard error.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the file extensions the extractor accepts.
var SupportedExtensions = []string{".pdf", ".docx", ".doc", ".txt"}

// UnsupportedFormatError indicates a file extension the extractor cannot
// handle.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: only PDF, DOCX, and TXT are supported", e.Extension)
}

// Supported reports whether the filename's extension can be extracted.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// File reads a file from disk and extracts its text, dispatching on the
// path's extension.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Text(path, data)
}

// Text extracts plain text from file data, dispatching on the filename's
// extension.
func Text(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return pdfText(data), nil
	case ".docx", ".doc":
		return docxText(data), nil
	case ".txt":
		return string(data), nil
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}
