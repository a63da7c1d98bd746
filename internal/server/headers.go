package server

import (
	"net/http"
	"strings"
)

// applyHeaders writes the CORS, security, and cache header tables.
// path must be the final (post-rewrite) request path so the cache
// policy keys off the extension actually being served.
func (s *Server) applyHeaders(h http.Header, path string) {
	h.Set("Access-Control-Allow-Origin", "*")

	if !s.cfg.SecurityHeaders {
		h.Set("Cache-Control", "no-cache")
		return
	}

	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, X-AI-Assistant")
	h.Set("Access-Control-Expose-Headers", "X-Performance-Metrics, X-AI-Analysis")

	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "DENY")
	h.Set("X-XSS-Protection", "1; mode=block")
	h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

	switch {
	case strings.HasSuffix(path, ".js"), strings.HasSuffix(path, ".css"):
		h.Set("Cache-Control", "public, max-age=31536000, immutable")
	case strings.HasSuffix(path, ".html"):
		h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	}

	h.Set("X-AI-Claude", "active")
	h.Set("X-AI-Gemini", "available")
	h.Set("X-AI-Collaboration", "enabled")
}
