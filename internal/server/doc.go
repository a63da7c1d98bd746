// Package server implements the spadev HTTP surface.
//
// Owns:
//   - Routing decisions (reserved payloads, alias rewrites, SPA fallback)
//   - Static file serving and the response header tables
//   - The fixed payload bodies behind the fake endpoints
//
// Does not own:
//   - Configuration loading (internal/shared)
//   - Process startup, flags, and exit codes (cmd/spadev)
//
// Invariants:
//   - JSON responses are consistent via writeJSON
//   - Route is pure: same path and existence answers, same decision
//   - A missing entry file fails at startup, never per request
package server
