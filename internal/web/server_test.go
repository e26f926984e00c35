package web

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JonMunkholm/ContactCleaner/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	return NewServer(cfg)
}

// multipartCSV builds a multipart request body with the CSV under the
// "file" form field.
func multipartCSV(t *testing.T, csvData string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "contacts.csv")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := io.WriteString(fw, csvData); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestHandleClean(t *testing.T) {
	s := testServer(t)

	input := "name,email,phone,company\n" +
		"  amy-walker jones , AMY@Example.COM ,+44 7700 900123,acme ltd\n" +
		"amy,amy@example.com,,\n"

	body, contentType := multipartCSV(t, input)
	req := httptest.NewRequest(http.MethodPost, "/api/clean", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if rec.Header().Get("X-Run-ID") == "" {
		t.Error("X-Run-ID header is empty")
	}
	if got := rec.Header().Get("X-Duplicates-Removed"); got != "1" {
		t.Errorf("X-Duplicates-Removed = %q, want %q", got, "1")
	}

	want := "name,email,phone,company\n" +
		"Amy-Walker Jones,amy@example.com,07700900123,Acme Ltd\n"
	if rec.Body.String() != want {
		t.Errorf("body mismatch:\ngot:\n%s\nwant:\n%s", rec.Body, want)
	}
}

func TestHandleReport(t *testing.T) {
	s := testServer(t)

	input := "name,email,phone,company\n" +
		"amy,amy@example.com,07700900123,\n" +
		"amy,amy@example.com,,\n"

	body, contentType := multipartCSV(t, input)
	req := httptest.NewRequest(http.MethodPost, "/api/report", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}

	for _, line := range []string{
		"CLEANING REPORT",
		"total_rows: 2",
		"rows_after_dedup: 1",
		"duplicates_removed: 1",
		"missing_company: 2",
	} {
		if !strings.Contains(rec.Body.String(), line) {
			t.Errorf("report missing %q:\n%s", line, rec.Body)
		}
	}
}

func TestHandleClean_NoFile(t *testing.T) {
	s := testServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.Close() // multipart form with no file field

	req := httptest.NewRequest(http.MethodPost, "/api/clean", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if errResp.Code != "FILE003" {
		t.Errorf("error code = %q, want %q", errResp.Code, "FILE003")
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want %q", got, "nosniff")
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want %q", got, "DENY")
	}
}
