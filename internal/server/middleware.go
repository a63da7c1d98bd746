package server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests tags every request with a short id and echoes the
// X-AI-Assistant header the demo frontend sends.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		assistant := r.Header.Get("X-AI-Assistant")
		if assistant == "" {
			assistant = "none"
		}
		log.Printf("req=%s [%s] %s %s -> %d (%s)",
			firstN(uuid.NewString(), 8), assistant, r.Method, r.URL.Path,
			rec.status, time.Since(start).Round(time.Millisecond))
	})
}
