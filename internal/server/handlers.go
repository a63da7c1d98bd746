package server

import (
	"encoding/json"
	"net/http"
)

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) servePayload(w http.ResponseWriter, kind PayloadKind) {
	switch kind {
	case PayloadAPI:
		w.Header().Set("X-AI-Analysis", "claude-code-processed")
		writeJSON(w, 200, apiPayload)
	case PayloadMetrics:
		writeJSON(w, 200, metricsPayload)
	case PayloadHealth:
		writeJSON(w, 200, healthPayload)
	case PayloadManifest:
		writeJSON(w, 200, manifestPayload)
	case PayloadServiceWorker:
		w.Header().Set("Content-Type", "application/javascript")
		w.WriteHeader(200)
		_, _ = w.Write([]byte(serviceWorkerJS))
	default:
		writeJSON(w, 500, map[string]any{"error": "unknown payload"})
	}
}
