package server

import "strings"

// PayloadKind names one of the fixed reserved-path responses.
type PayloadKind int

const (
	PayloadAPI PayloadKind = iota
	PayloadMetrics
	PayloadHealth
	PayloadServiceWorker
	PayloadManifest
)

type DecisionKind int

const (
	// ServeStatic serves the literal path; an absent file surfaces as 404.
	ServeStatic DecisionKind = iota
	// Rewrite replaces the request path before static serving.
	Rewrite
	// ServePayload answers with a fixed reserved payload.
	ServePayload
)

type Decision struct {
	Kind    DecisionKind
	Path    string      // rewrite target when Kind == Rewrite
	Payload PayloadKind // set when Kind == ServePayload
}

type RouteOptions struct {
	EntryFile      string // absolute request path, e.g. "/demo-perfect.html"
	ShiftEntryFile string
	FakeEndpoints  bool
	RewriteRoot    bool
}

// Route decides how to answer path. exists reports whether the path
// (leading slash stripped) names a regular file under the serving root.
//
// Reserved paths win over everything, then the shift aliases, then the
// SPA fallback: an extension-less path with no matching file is treated
// as a client-side route and rewritten to the entry file. Paths with a
// dot are assumed to name a real asset and are never rewritten, so a
// missing one becomes a 404. /api/ paths are carved out of the fallback
// even when the fake endpoints are disabled.
func Route(path string, exists func(string) bool, opts RouteOptions) Decision {
	if opts.FakeEndpoints {
		if strings.HasPrefix(path, "/api/") {
			return Decision{Kind: ServePayload, Payload: PayloadAPI}
		}
		switch path {
		case "/metrics":
			return Decision{Kind: ServePayload, Payload: PayloadMetrics}
		case "/health":
			return Decision{Kind: ServePayload, Payload: PayloadHealth}
		case "/sw.js":
			return Decision{Kind: ServePayload, Payload: PayloadServiceWorker}
		case "/manifest.json":
			return Decision{Kind: ServePayload, Payload: PayloadManifest}
		}
	}

	if path == "/shift-system" || path == "/shift" {
		return Decision{Kind: Rewrite, Path: opts.ShiftEntryFile}
	}

	if path == "/" {
		if opts.RewriteRoot {
			return Decision{Kind: Rewrite, Path: opts.EntryFile}
		}
		return Decision{Kind: ServeStatic}
	}

	if !strings.HasPrefix(path, "/api/") &&
		!strings.Contains(path, ".") &&
		!exists(strings.TrimPrefix(path, "/")) {
		return Decision{Kind: Rewrite, Path: opts.EntryFile}
	}

	return Decision{Kind: ServeStatic}
}
