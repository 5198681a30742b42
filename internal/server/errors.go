package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/extract"
)

// ErrNoFile indicates the multipart form had no resume file part.
type ErrNoFile struct{}

func (e *ErrNoFile) Error() string {
	return "No file uploaded"
}

// ErrEmptyFilename indicates a file part with a blank filename.
type ErrEmptyFilename struct{}

func (e *ErrEmptyFilename) Error() string {
	return "No file selected"
}

// ErrBodyTooLarge indicates the upload exceeded the configured cap.
type ErrBodyTooLarge struct {
	Limit int64
}

func (e *ErrBodyTooLarge) Error() string {
	return fmt.Sprintf("File too large: the upload limit is %d bytes", e.Limit)
}

// HTTPStatus maps request errors to status codes. Anything unrecognized is a
// server-side failure.
func HTTPStatus(err error) int {
	var (
		noFile      *ErrNoFile
		emptyName   *ErrEmptyFilename
		tooLarge    *ErrBodyTooLarge
		unsupported *extract.UnsupportedFormatError
	)
	switch {
	case errors.As(err, &noFile),
		errors.As(err, &emptyName),
		errors.As(err, &unsupported):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
