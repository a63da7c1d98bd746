package server

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"spadev/internal/shared"
)

type Server struct {
	cfg    *shared.Config
	static http.Handler
}

// New validates the serving root up front: a missing root or entry file
// is a startup error, never a per-request one. A missing dist/ only
// warns, since the demo works unbundled.
func New(cfg *shared.Config) (*Server, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("serving root %s: not a directory", cfg.Root)
	}
	if _, err := os.Stat(filepath.Join(cfg.Root, cfg.EntryFile)); err != nil {
		return nil, fmt.Errorf("entry file %s not found under %s", cfg.EntryFile, cfg.Root)
	}
	if _, err := os.Stat(filepath.Join(cfg.Root, "dist")); err != nil {
		log.Printf("warning: no dist directory under %s; run the frontend build first", cfg.Root)
	}

	return &Server{
		cfg:    cfg,
		static: http.FileServer(http.Dir(cfg.Root)),
	}, nil
}

func (s *Server) fileExists(rel string) bool {
	info, err := os.Stat(filepath.Join(s.cfg.Root, filepath.FromSlash(rel)))
	return err == nil && !info.IsDir()
}

func (s *Server) routeOpts() RouteOptions {
	return RouteOptions{
		EntryFile:      "/" + strings.TrimPrefix(s.cfg.EntryFile, "/"),
		ShiftEntryFile: "/" + strings.TrimPrefix(s.cfg.ShiftEntryFile, "/"),
		FakeEndpoints:  s.cfg.FakeEndpoints,
		RewriteRoot:    s.cfg.RewriteRoot,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dec := Route(r.URL.Path, s.fileExists, s.routeOpts())

	if dec.Kind == Rewrite {
		r2 := r.Clone(r.Context())
		r2.URL.Path = dec.Path
		r = r2
	}

	s.applyHeaders(w.Header(), r.URL.Path)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if dec.Kind == ServePayload {
		s.servePayload(w, dec.Payload)
		return
	}

	s.static.ServeHTTP(w, r)
}

// Handler is the full chain: access logging around routing and serving.
func (s *Server) Handler() http.Handler {
	return logRequests(s)
}

// ListenAndServe binds cfg.Addr and serves until the listener fails.
// Binding happens before any request handling so a taken port is
// reported as a clean startup diagnostic.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("bind %s (port already in use?): %w", s.cfg.Addr, err)
	}

	base := "http://localhost" + s.cfg.Addr
	if !strings.HasPrefix(s.cfg.Addr, ":") {
		base = "http://" + s.cfg.Addr
	}
	log.Printf("spadev listening on %s", s.cfg.Addr)
	log.Printf("serving root: %s", s.cfg.Root)
	log.Printf("entry: %s/%s", base, s.cfg.EntryFile)
	if s.cfg.FakeEndpoints {
		log.Printf("health: %s/health  metrics: %s/metrics", base, base)
	}

	return http.Serve(ln, s.Handler())
}
