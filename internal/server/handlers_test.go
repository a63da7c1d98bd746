package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func decodePayload(t *testing.T, srv *Server, kind PayloadKind) map[string]any {
	t.Helper()

	rec := httptest.NewRecorder()
	srv.servePayload(rec, kind)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	return body
}

func TestHealthPayload(t *testing.T) {
	srv := newTestServer(t, nil)

	body := decodePayload(t, srv, PayloadHealth)
	if body["status"] != "healthy" {
		t.Fatalf("status = %v, want healthy", body["status"])
	}
	services, ok := body["services"].(map[string]any)
	if !ok || services["spa_framework"] != "active" {
		t.Fatalf("services = %v, want spa_framework active", body["services"])
	}
}

func TestAPIPayload(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	srv.servePayload(rec, PayloadAPI)

	if got := rec.Header().Get("X-AI-Analysis"); got != "claude-code-processed" {
		t.Fatalf("X-AI-Analysis = %q", got)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("success = %v, want true", body["success"])
	}
}

func TestManifestPayload(t *testing.T) {
	srv := newTestServer(t, nil)

	body := decodePayload(t, srv, PayloadManifest)
	if body["name"] != "Perfect SPA Framework v2.0" {
		t.Fatalf("name = %v", body["name"])
	}
	if body["start_url"] != "/demo-perfect.html" {
		t.Fatalf("start_url = %v", body["start_url"])
	}
}

func TestMetricsPayload(t *testing.T) {
	srv := newTestServer(t, nil)

	body := decodePayload(t, srv, PayloadMetrics)
	perf, ok := body["performance"].(map[string]any)
	if !ok || perf["bundle_size"] != "6.04 KB" {
		t.Fatalf("performance = %v", body["performance"])
	}
}

func TestServiceWorkerPayload(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	srv.servePayload(rec, PayloadServiceWorker)

	if ct := rec.Header().Get("Content-Type"); ct != "application/javascript" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "perfect-spa-v2.0") {
		t.Fatal("service worker body missing cache name")
	}
}
