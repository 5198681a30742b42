package server

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/fetch"
)

// unsupportedFormatMessage is the client-facing message for bad extensions.
const unsupportedFormatMessage = "Unsupported file format. Please upload PDF, DOCX, or TXT files."

// handleAnalyze accepts a multipart upload (field "resume") plus optional
// "job_description" or "job_description_url" fields and returns the analysis
// result as JSON. Request-validation failures use the {"error": ...} shape.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			reqErr := &ErrBodyTooLarge{Limit: s.cfg.MaxUploadBytes}
			s.errorResponse(w, HTTPStatus(reqErr), reqErr.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("resume")
	if err != nil {
		reqErr := &ErrNoFile{}
		s.errorResponse(w, HTTPStatus(reqErr), reqErr.Error())
		return
	}
	defer func() { _ = file.Close() }()

	if strings.TrimSpace(header.Filename) == "" {
		reqErr := &ErrEmptyFilename{}
		s.errorResponse(w, HTTPStatus(reqErr), reqErr.Error())
		return
	}

	if !extract.Supported(header.Filename) {
		s.errorResponse(w, http.StatusBadRequest, unsupportedFormatMessage)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read upload: "+err.Error())
		return
	}

	// Spool the upload to disk and extract from the spooled file. Always
	// removed afterwards.
	tempPath := filepath.Join(s.cfg.UploadDir, uuid.New().String()+strings.ToLower(filepath.Ext(header.Filename)))
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload: "+err.Error())
		return
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			log.Printf("Failed to remove temp upload %s: %v", tempPath, err)
		}
	}()

	text, err := extract.File(tempPath)
	if err != nil {
		// Per-format read failures come back as error-describing text and
		// are analyzed as-is; only unsupported extensions and filesystem
		// errors reach here.
		msg := "Failed to process upload: " + err.Error()
		var unsupported *extract.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			msg = unsupportedFormatMessage
		}
		s.errorResponse(w, HTTPStatus(err), msg)
		return
	}

	jobDescription := s.jobDescription(r)

	result := analysis.Analyze(text, jobDescription, s.now())
	s.jsonResponse(w, http.StatusOK, result)
}

// jobDescription resolves the job description from the form, fetching it
// from a URL when one is given instead of inline text. Fetch failures
// degrade to an empty description (so no match is computed) rather than
// failing the whole request.
func (s *Server) jobDescription(r *http.Request) string {
	if jd := r.FormValue("job_description"); strings.TrimSpace(jd) != "" {
		return jd
	}

	jobURL := strings.TrimSpace(r.FormValue("job_description_url"))
	if jobURL == "" {
		return ""
	}

	text, err := fetch.JobDescription(r.Context(), jobURL, s.cfg.FetchTimeout())
	if err != nil {
		log.Printf("Job description fetch failed: %v", err)
		return ""
	}
	return text
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
