package web

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/ContactCleaner/internal/contact"
	"github.com/JonMunkholm/ContactCleaner/internal/csvio"
	"github.com/JonMunkholm/ContactCleaner/internal/logging"
	"github.com/google/uuid"
)

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleClean accepts a raw contacts CSV as a multipart upload and
// responds with the cleaned, deduplicated CSV.
func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	records, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	runID := uuid.NewString()
	cleaned := contact.Clean(records)
	stats := contact.Tally(cleaned)
	deduped, removed := contact.Dedupe(cleaned)

	logging.FromContext(r.Context()).Info("upload cleaned",
		"run_id", runID,
		"total_rows", stats.Total,
		"rows_after_dedup", len(deduped),
		"duplicates_removed", removed,
	)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="cleaned_contacts.csv"`)
	w.Header().Set("X-Run-ID", runID)
	w.Header().Set("X-Total-Rows", strconv.Itoa(stats.Total))
	w.Header().Set("X-Duplicates-Removed", strconv.Itoa(removed))

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(contact.Rows(deduped)); err != nil {
		// Headers are already out; all we can do is log
		logging.FromContext(r.Context()).Error("writing response csv", "error", err)
	}
}

// handleReport accepts a raw contacts CSV as a multipart upload and
// responds with the plain-text cleaning report.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	records, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	cleaned := contact.Clean(records)
	stats := contact.Tally(cleaned)
	deduped, removed := contact.Dedupe(cleaned)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, contact.RenderReport(stats, len(deduped), removed))
}

// readUpload extracts and parses the CSV from the "file" form field.
// On failure it writes the error response and returns ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]csvio.Record, bool) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		s.respondError(w, r, fmt.Errorf("file too large or invalid form: %w", err), http.StatusBadRequest)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, fmt.Errorf("no file provided: %w", err), http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	records, err := csvio.ReadAll(file)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return nil, false
	}

	return records, true
}

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
}

// respondError logs the technical error and returns the user-friendly
// mapped message as JSON.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := contact.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:  userMsg.Message,
		Action: userMsg.Action,
		Code:   userMsg.Code,
	})
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
