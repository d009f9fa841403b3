package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleParseReturnsRenderedGraph(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewBufferString(`{"dot": "graph { A; B; A -- B }"}`))
	rec := httptest.NewRecorder()
	handleParse(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var resp parseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Rendered == "" {
		t.Errorf("expected a non-empty rendering")
	}
}

func TestHandleParseRejectsMissingDOTField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handleParse(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
}

func TestHandleParseRejectsInvalidDOT(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewBufferString(`{"dot": "not a graph"}`))
	rec := httptest.NewRecorder()
	handleParse(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("got status %d, want 422", rec.Code)
	}
}

func TestHandleParseFlattenCollectsDiagnostics(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewBufferString(
		`{"dot": "graph { A; subgraph s { B } }", "flatten": true}`))
	rec := httptest.NewRecorder()
	handleParse(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Rendered    string   `json:"rendered"`
		Diagnostics []string `json:"diagnostics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Diagnostics) != 1 {
		t.Errorf("got %d diagnostics, want 1 for the discarded subgraph", len(resp.Diagnostics))
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	handler := requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "abc-123" {
		t.Errorf("got %q, want the incoming request id preserved", got)
	}
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	handler := requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got == "" {
		t.Errorf("expected a generated request id")
	}
}

func TestCorsMiddlewareAllowsConfiguredOrigin(t *testing.T) {
	handler := corsMiddleware([]string{"http://localhost:5173"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))
	req := httptest.NewRequest(http.MethodPost, "/parse", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("got %q, want the allowed origin echoed back", got)
	}
}

func TestCorsMiddlewareRejectsUnlistedOrigin(t *testing.T) {
	handler := corsMiddleware([]string{"http://localhost:5173"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))
	req := httptest.NewRequest(http.MethodPost, "/parse", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("got %q, want no CORS header for an unlisted origin", got)
	}
}
