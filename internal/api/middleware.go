package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/observability"
)

type ctxKey int

const requestIDKey ctxKey = 0

// RequestIDHeader carries the request ID on responses so clients can quote
// it in bug reports.
const RequestIDHeader = "X-Request-Id"

// requestID tags each request with a fresh UUID, honoring one supplied by
// the client (a proxy in front of us may already have assigned it).
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID returns the request's ID, or "" outside a request context.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// statusWriter captures the response code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(sw, r)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, time.Since(start))
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"request_id", RequestID(r.Context()),
			"duration", time.Since(start))
	})
}
