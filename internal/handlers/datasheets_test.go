// datasheets_test.go — Tests for the upload endpoint's input validation and
// error envelopes.
//
// Go Pattern: gin in test mode + httptest.NewRecorder lets us drive handlers
// without a network listener. Multipart bodies are built with mime/multipart.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/solarstack/datasheet-api/internal/pipeline"
)

// failLLM fails the test if the model is ever reached.
type failLLM struct {
	t *testing.T
}

func (f *failLLM) Extract(ctx context.Context, text string) (map[string]any, error) {
	f.t.Error("model called — input validation should have rejected the request first")
	return nil, nil
}

// staticInfo satisfies ModelInfo for the health endpoint.
type staticInfo struct {
	configured bool
	model      string
}

func (s staticInfo) IsConfigured() bool { return s.configured }
func (s staticInfo) Model() string      { return s.model }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(pipeline.New(&failLLM{t: t}), staticInfo{configured: true, model: "test-model"}, 16<<20, "test")

	r := gin.New()
	r.GET("/api/v1/health", h.HealthCheck)
	r.POST("/api/v1/datasheets/extract", h.ExtractDatasheet)
	return r
}

// multipartUpload builds a multipart body with a single "file" part.
func multipartUpload(t *testing.T, fieldName, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write(content)
	w.Close()

	return &buf, w.FormDataContentType()
}

func doUpload(t *testing.T, r *gin.Engine, fieldName, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartUpload(t, fieldName, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasheets/extract", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// errorEnvelope decodes the {"error": ...} body.
func errorEnvelope(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not an error envelope: %s", rec.Body.String())
	}
	if envelope.Error == "" {
		t.Fatalf("error envelope has empty message: %s", rec.Body.String())
	}
	return envelope.Error
}

func TestExtractDatasheet_RejectsNonPDFExtension(t *testing.T) {
	r := newTestRouter(t)

	rec := doUpload(t, r, "file", "spec.txt", []byte("%PDF-1.4 header does not matter here"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if msg := errorEnvelope(t, rec); msg != "Invalid file type. Please upload a PDF." {
		t.Errorf("error = %q, want invalid file type message", msg)
	}
}

func TestExtractDatasheet_RejectsMissingFile(t *testing.T) {
	r := newTestRouter(t)

	rec := doUpload(t, r, "wrong_field", "panel.pdf", []byte("%PDF-1.4"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	errorEnvelope(t, rec)
}

func TestExtractDatasheet_RejectsBadMagicBytes(t *testing.T) {
	r := newTestRouter(t)

	// Right extension, wrong content.
	rec := doUpload(t, r, "file", "panel.pdf", []byte("just some text"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	errorEnvelope(t, rec)
}

func TestExtractDatasheet_CorruptPDFFailsBeforeModelCall(t *testing.T) {
	r := newTestRouter(t)

	// Valid magic bytes, unparseable document: the pipeline must abort during
	// extraction — the failLLM dependency asserts no model call happens.
	rec := doUpload(t, r, "file", "panel.pdf", []byte("%PDF-1.4 but truncated garbage"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	errorEnvelope(t, rec)
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var health struct {
		Status string `json:"status"`
		Model  string `json:"model"`
		AIKey  bool   `json:"ai_key"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("invalid health response: %v", err)
	}
	if health.Status != "ok" || health.Model != "test-model" || !health.AIKey {
		t.Errorf("health = %+v, want ok/test-model/true", health)
	}
}
